package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_DigitsTagRegistered(t *testing.T) {
	type form struct {
		Count string `json:"count" validate:"digits"`
	}

	errs, err := Struct(form{Count: "42"}, nil)
	require.NoError(t, err)
	assert.Nil(t, errs)

	for _, bad := range []string{"-1", "1.5", " 7", "x"} {
		errs, err = Struct(form{Count: bad}, nil)
		require.NoError(t, err, bad)
		assert.Equal(t, "Must contain digits only.", errs["count"], bad)
	}
}
