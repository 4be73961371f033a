package common

import (
	"slices"
	"testing"
)

func TestParseSQLStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "comments and blank statements",
			sql:  "-- header\nCREATE TABLE a (id INT);\n\n;\nCREATE TABLE b (id INT); -- trailing\n",
			want: []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"},
		},
		{
			name: "semicolon inside a literal",
			sql:  "INSERT INTO a VALUES ('x;y');INSERT INTO a VALUES ('z')",
			want: []string{"INSERT INTO a VALUES ('x;y')", "INSERT INTO a VALUES ('z')"},
		},
		{
			name: "empty",
			sql:  "-- nothing here\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSQLStatements(tt.sql)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseSQLStatements() = %q, want %q", got, tt.want)
			}
		})
	}
}
