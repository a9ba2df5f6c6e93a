package leapsec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// POSIX second of 2017-01-01T00:00Z, the midnight following the most recent
// inserted leap second.
const posix2017 int64 = 1_483_228_800

func posixInstant(secs int64, nanos int32) temporal.Instant {
	return temporal.Instant{Seconds: secs, Nanos: nanos, Scale: temporal.ScalePOSIX}
}

func TestUTCSeconds(t *testing.T) {
	t.Run("Epoch has no accumulated leaps", func(t *testing.T) {
		utc, err := UTCSeconds(posixInstant(EpochSeconds, 0))
		require.NoError(t, err)
		require.Equal(t, EpochSeconds, utc)
	})

	t.Run("All 27 insertions accumulated by 2017", func(t *testing.T) {
		utc, err := UTCSeconds(posixInstant(posix2017, 0))
		require.NoError(t, err)
		require.Equal(t, posix2017+27, utc)
	})

	t.Run("Before epoch fails", func(t *testing.T) {
		_, err := UTCSeconds(posixInstant(EpochSeconds-1, 0))
		require.ErrorIs(t, err, errs.ErrBeforeLeapSecondEpoch)

		_, err = UTCSeconds(posixInstant(0, 0))
		require.ErrorIs(t, err, errs.ErrBeforeLeapSecondEpoch)
	})
}

func TestPosixProjection(t *testing.T) {
	t.Run("Round trip outside leap seconds", func(t *testing.T) {
		for _, posix := range []int64{EpochSeconds, 1_000_000_000, posix2017, posix2017 + 86_400} {
			utc, err := UTCSeconds(posixInstant(posix, 0))
			require.NoError(t, err)
			back, err := PosixSeconds(utc)
			require.NoError(t, err)
			require.Equal(t, posix, back)
		}
	})

	t.Run("Inserted second clamps onto the repeated POSIX second", func(t *testing.T) {
		// UTC second of the 2016-12-31T23:59:60 insertion
		leapUTC := posix2017 + 27 - 1
		require.True(t, IsLeapSecond(leapUTC))

		posix, err := PosixSeconds(leapUTC)
		require.NoError(t, err)
		require.Equal(t, posix2017-1, posix)
	})
}

func TestDelta(t *testing.T) {
	t.Run("Straddling the 2016 leap second", func(t *testing.T) {
		// from 2016-12-31T23:59:59Z to 2017-01-01T00:00:00Z: one POSIX
		// second apart, but two real SI seconds elapsed
		a := posixInstant(posix2017-1, 0)
		b := posixInstant(posix2017, 0)

		delta, err := Delta(a, b)
		require.NoError(t, err)
		require.Equal(t, int64(2), delta)
	})

	t.Run("Sub-second floor correction", func(t *testing.T) {
		a := posixInstant(posix2017, 500_000_000)
		b := posixInstant(posix2017+2, 100_000_000)

		delta, err := Delta(a, b)
		require.NoError(t, err)
		require.Equal(t, int64(1), delta)

		// and symmetric for the reverse direction
		delta, err = Delta(b, a)
		require.NoError(t, err)
		require.Equal(t, int64(-1), delta)
	})

	t.Run("Before epoch fails", func(t *testing.T) {
		_, err := Delta(posixInstant(0, 0), posixInstant(posix2017, 0))
		require.ErrorIs(t, err, errs.ErrBeforeLeapSecondEpoch)
	})
}

func TestDeltaNanos(t *testing.T) {
	t.Run("Includes the inserted tick", func(t *testing.T) {
		a := posixInstant(posix2017-1, 0)
		b := posixInstant(posix2017, 500)

		nanos, err := DeltaNanos(a, b)
		require.NoError(t, err)
		require.Equal(t, int64(2_000_000_500), nanos)
	})

	t.Run("Overflow fails explicitly", func(t *testing.T) {
		a := posixInstant(EpochSeconds, 0)
		b := posixInstant(EpochSeconds+(1<<40), 0)

		_, err := DeltaNanos(a, b)
		require.ErrorIs(t, err, errs.ErrArithmeticOverflow)
	})
}

func TestCalibration(t *testing.T) {
	t.Run("Concurrent initializers converge", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				Calibrate()
			}()
		}
		wg.Wait()

		s1, _ := NowPosix()
		s2, _ := NowPosix()
		require.GreaterOrEqual(t, s2, s1)
		require.Greater(t, s1, int64(1_600_000_000)) // sanity: after 2020
	})
}
