package repos

import "github.com/jackc/pgx/v5/pgtype"

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func textVal(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func int8Ptr(t pgtype.Int8) *int64 {
	if !t.Valid {
		return nil
	}
	n := t.Int64
	return &n
}

func int8Val(n *int64) pgtype.Int8 {
	if n == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *n, Valid: true}
}
