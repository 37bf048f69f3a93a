package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depconflict/internal/adapters/fs"
	"go.trai.ch/depconflict/internal/core/domain"
)

func TestHasher_HashContent(t *testing.T) {
	h := fs.NewHasher()

	a := h.HashContent([]byte(`{"dependencies":{"a":"1.0.0"}}`))
	b := h.HashContent([]byte(`{"dependencies":{"a":"1.0.0"}}`))
	c := h.HashContent([]byte(`{"dependencies":{"a":"2.0.0"}}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestHasher_Fingerprint(t *testing.T) {
	h := fs.NewHasher()

	conflicts := []domain.ConflictEntry{
		{
			Package: "left-pad",
			Versions: []domain.VersionUsage{
				{Version: "1.0.0", UsedBy: []string{"a/package.json"}},
				{Version: "1.3.0", UsedBy: []string{"b/package.json"}},
			},
		},
	}

	fp := h.Fingerprint(conflicts)
	assert.Len(t, fp, 16)
	assert.Equal(t, fp, h.Fingerprint(conflicts))

	t.Run("consumer change alters fingerprint", func(t *testing.T) {
		changed := []domain.ConflictEntry{
			{
				Package: "left-pad",
				Versions: []domain.VersionUsage{
					{Version: "1.0.0", UsedBy: []string{"a/package.json", "c/package.json"}},
					{Version: "1.3.0", UsedBy: []string{"b/package.json"}},
				},
			},
		}
		assert.NotEqual(t, fp, h.Fingerprint(changed))
	})

	t.Run("field boundaries are separated", func(t *testing.T) {
		left := []domain.ConflictEntry{{Package: "ab", Versions: []domain.VersionUsage{{Version: "c"}}}}
		right := []domain.ConflictEntry{{Package: "a", Versions: []domain.VersionUsage{{Version: "bc"}}}}
		assert.NotEqual(t, h.Fingerprint(left), h.Fingerprint(right))
	})

	t.Run("empty list is stable", func(t *testing.T) {
		assert.Equal(t, h.Fingerprint(nil), h.Fingerprint([]domain.ConflictEntry{}))
	})
}
