package i18n

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"cube-scanner/internal/domain/entity"
)

func TestNew_MatchesLocale(t *testing.T) {
	require.Equal(t, "en", New("").Locale())
	require.Equal(t, "ru", New("ru").Locale())
	require.Equal(t, "ru", New("ru-RU").Locale())
	require.Equal(t, "en", New("de").Locale())
}

func TestPrinter_T(t *testing.T) {
	require.Equal(t, "Scanned sides: 4/6", New("en").T(KeyScannedSides, 4))
	require.Equal(t, "Отсканировано граней: 4/6", New("ru").T(KeyScannedSides, 4))
	require.Equal(t, "Please show the blue side", New("en").T(KeyCalibrateSide, New("en").Color(entity.Blue)))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	en := catalogs[supported[0]]
	for tag, msgs := range catalogs {
		require.Len(t, msgs, len(en), tag.String())
		for key := range en {
			_, ok := msgs[key]
			require.True(t, ok, "%s: missing %s", tag, key)
		}
	}
}

func TestPrinter_DescribeMove(t *testing.T) {
	p := New("en")

	got, err := p.DescribeMove("L'")
	require.NoError(t, err)
	require.Equal(t, "Turn the left side a quarter turn counterclockwise", got)

	got, err = New("ru").DescribeMove("D2")
	require.NoError(t, err)
	require.Equal(t, "Поверните нижнюю грань на 180 градусов", got)

	for _, bad := range []string{"", "X", "R3", "U''"} {
		_, err := p.DescribeMove(bad)
		require.Error(t, err, bad)
	}
}

func TestPrinter_Error(t *testing.T) {
	p := New("en")
	wrapped := fmt.Errorf("%w: 5 of 6 faces scanned", entity.ErrScanIncomplete)

	require.Equal(t, "[Error] You haven't scanned all sides correctly", p.Error(wrapped))
	require.Equal(t, "[Error] solver is not configured", p.Error(fmt.Errorf("solver is not configured")))
	require.Empty(t, p.Error(nil))
}
