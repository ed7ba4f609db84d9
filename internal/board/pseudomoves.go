package board

// PseudoMoves returns the bitboard of squares the piece on sq could reach,
// ignoring whether the move would leave the mover's own king in check. This
// is component C of the move generator; LegalMoves (legal.go) is the
// king-safety filter layered on top of it.
//
// Returns Empty if sq is unoccupied or holds a piece of the wrong color.
func (p *Position) PseudoMoves(sq Square) Bitboard {
	piece := p.PieceAt(sq)
	if piece == NoPiece || piece.Color() != p.SideToMove {
		return Empty
	}

	us := piece.Color()
	switch piece.Type() {
	case Pawn:
		return p.pseudoPawnMoves(sq, us)
	case Knight:
		return KnightAttacks(sq) &^ p.Occupied[us]
	case Bishop:
		return BishopAttacks(sq, p.AllOccupied) &^ p.Occupied[us]
	case Rook:
		return RookAttacks(sq, p.AllOccupied) &^ p.Occupied[us]
	case Queen:
		return QueenAttacks(sq, p.AllOccupied) &^ p.Occupied[us]
	case King:
		return p.pseudoKingMoves(sq, us)
	default:
		return Empty
	}
}

// pseudoPawnMoves computes non-capture pushes, diagonal captures (including
// the en-passant target), for a single pawn.
func (p *Position) pseudoPawnMoves(sq Square, us Color) Bitboard {
	bb := SquareBB(sq)
	empty := ^p.AllOccupied
	enemies := p.Occupied[us.Other()]

	var doublePushRank Bitboard
	if us == White {
		doublePushRank = Rank4
	} else {
		doublePushRank = Rank5
	}

	push1 := bb.Forward(us) & empty
	push2 := push1.Forward(us) & empty & doublePushRank

	var epTarget Bitboard
	if p.EnPassant != NoSquare {
		epTarget = SquareBB(p.EnPassant)
	}
	captures := PawnAttacks(sq, us) & (enemies | epTarget)

	return push1 | push2 | captures
}

// pseudoKingMoves computes the king's single-step moves plus any castling
// moves currently available to it.
func (p *Position) pseudoKingMoves(sq Square, us Color) Bitboard {
	moves := KingAttacks(sq) &^ p.Occupied[us]
	return moves | p.castlingMoves(us)
}

// castlingMoves returns the destination squares (c- or g-file of the rear
// rank) that us may legally castle to right now: the rights flag must still
// be set, the squares between king and rook must be empty, and the king's
// origin, transit, and destination squares must all be unattacked. Per
// spec.md's component C this check lives in pseudo-move generation, not the
// later legality filter — castling is never offered as a pseudo-move that
// the filter would need to reject.
func (p *Position) castlingMoves(us Color) Bitboard {
	them := us.Other()
	var moves Bitboard

	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			moves |= SquareBB(G1)
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			moves |= SquareBB(C1)
		}
	} else {
		if p.CastlingRights&BlackKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
			moves |= SquareBB(G8)
		}
		if p.CastlingRights&BlackQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
			moves |= SquareBB(C8)
		}
	}

	return moves
}
