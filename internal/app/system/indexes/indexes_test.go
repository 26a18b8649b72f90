package indexes

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestKeySig(t *testing.T) {
	tests := []struct {
		name string
		keys bson.D
		want string
	}{
		{
			name: "single ascending",
			keys: bson.D{{Key: "personal_info.email", Value: 1}},
			want: "personal_info.email:1",
		},
		{
			name: "compound mixed order",
			keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			want: "status:1, created_at:-1",
		},
		{
			name: "empty",
			keys: bson.D{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keySig(tt.keys)
			if got != tt.want {
				t.Errorf("keySig() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeySig_OrderMatters(t *testing.T) {
	a := keySig(bson.D{{Key: "a", Value: 1}, {Key: "b", Value: 1}})
	b := keySig(bson.D{{Key: "b", Value: 1}, {Key: "a", Value: 1}})
	if a == b {
		t.Error("signatures for differently ordered compound keys must differ")
	}
}

func TestIsOptionsConflictErr(t *testing.T) {
	if isOptionsConflictErr(nil) {
		t.Error("nil error is not a conflict")
	}
	if !isOptionsConflictErr(errors.New("(IndexOptionsConflict) Index with name: x already exists")) {
		t.Error("expected IndexOptionsConflict error to be detected")
	}
	if isOptionsConflictErr(errors.New("connection refused")) {
		t.Error("unrelated error must not be detected as conflict")
	}
}
