package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "bodygraph/pkg/errors"
)

func TestTimestampValidate(t *testing.T) {
	valid := Timestamp{Year: 1987, Month: 6, Day: 15, Hour: 13, Minute: 30, Second: 0, TZOffset: 2}
	require.NoError(t, valid.Validate())

	cases := map[string]Timestamp{
		"negative month":   {Year: 1987, Month: -1, Day: 1},
		"negative day":     {Year: 1987, Month: 1, Day: -3},
		"negative hour":    {Year: 1987, Month: 1, Day: 1, Hour: -1},
		"negative minute":  {Year: 1987, Month: 1, Day: 1, Minute: -1},
		"negative second":  {Year: 1987, Month: 1, Day: 1, Second: -5},
		"month too large":  {Year: 1987, Month: 13, Day: 1},
		"day too large":    {Year: 1987, Month: 1, Day: 32},
		"hour too large":   {Year: 1987, Month: 1, Day: 1, Hour: 25},
		"minute too large": {Year: 1987, Month: 1, Day: 1, Minute: 61},
		"second too large": {Year: 1987, Month: 1, Day: 1, Second: 61},
	}
	for name, ts := range cases {
		t.Run(name, func(t *testing.T) {
			err := ts.Validate()
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
		})
	}

	t.Run("negative tz offset is fine", func(t *testing.T) {
		ts := valid
		ts.TZOffset = -9.5
		assert.NoError(t, ts.Validate())
	})

	t.Run("hour 24 allowed", func(t *testing.T) {
		ts := valid
		ts.Hour = 24
		assert.NoError(t, ts.Validate())
	})
}
