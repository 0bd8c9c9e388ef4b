package keypair_test

import (
	"testing"

	"github.com/varseand/claves/internal/domain/keypair"
)

func TestKeyPair_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kp      *keypair.KeyPair
		wantErr error
	}{
		{"valid", &keypair.KeyPair{KeyName: "dev"}, nil},
		{"no name", &keypair.KeyPair{}, keypair.ErrKeyNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.kp.Validate(); err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
