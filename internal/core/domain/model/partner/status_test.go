package partner_test

import (
	"testing"

	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("should parse every known status", func(t *testing.T) {
		for _, s := range []partner.Status{
			partner.Pending, partner.Active, partner.Inactive, partner.Suspended, partner.Rejected,
		} {
			parsed, err := partner.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown", func(t *testing.T) {
		_, err := partner.ParseStatus("banned")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, partner.Unknown.Validate(), errs.ErrValueIsInvalid)
	})
}
