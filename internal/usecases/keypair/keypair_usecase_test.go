package keypair

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varseand/claves/internal/domain/apperror"
	"github.com/varseand/claves/internal/domain/keypair"
)

type fakeRepository struct {
	err   error
	calls int
}

func (f *fakeRepository) Get(_ context.Context, name string) (*keypair.KeyPair, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &keypair.KeyPair{KeyName: name, KeyPairID: "key-0123", KeyType: "ed25519"}, nil
}

func TestGetKeyPair(t *testing.T) {
	repo := &fakeRepository{}
	uc := NewKeyPairUseCase(repo)

	kp, err := uc.GetKeyPair(context.Background(), "dev")

	require.NoError(t, err)
	assert.Equal(t, "dev", kp.KeyName)
	assert.Equal(t, "key-0123", kp.KeyPairID)
}

func TestGetKeyPair_Errors(t *testing.T) {
	boom := errors.New("throttled")

	tests := []struct {
		name      string
		keyName   string
		repoErr   error
		wantCode  int
		wantCalls int
	}{
		{"empty name", "", nil, apperror.CodeKeyPairRequired, 0},
		{"not found", "ghost", fmt.Errorf("%w: ghost", keypair.ErrKeyPairNotFound), apperror.CodeKeyPairNotFound, 1},
		{"api failure", "dev", boom, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{err: tt.repoErr}
			_, err := NewKeyPairUseCase(repo).GetKeyPair(context.Background(), tt.keyName)

			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, repo.calls)
			if tt.wantCode < 0 {
				_, ok := apperror.As(err)
				assert.False(t, ok)
				assert.ErrorIs(t, err, boom)
				return
			}
			assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
		})
	}
}

func TestGetKeyPair_NotFoundMessage(t *testing.T) {
	uc := NewKeyPairUseCase(&fakeRepository{err: keypair.ErrKeyPairNotFound})

	_, err := uc.GetKeyPair(context.Background(), "ghost")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, `The key pair "ghost" does not exist.`, appErr.Message)
}
