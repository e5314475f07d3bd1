package slashing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/log/logtest"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type testSlasher struct {
	*Slasher
	validators *MockvalidatorSet
	pool       *MockrewardPool
	oracle     *MockproofVerifier
	publisher  *Mockpublisher
}

func newTestSlasher(tb testing.TB, params Params) *testSlasher {
	tb.Helper()
	ctrl := gomock.NewController(tb)
	ts := &testSlasher{
		validators: NewMockvalidatorSet(ctrl),
		pool:       NewMockrewardPool(ctrl),
		oracle:     NewMockproofVerifier(ctrl),
		publisher:  NewMockpublisher(ctrl),
	}
	cfg := DefaultConfig()
	cfg.Params = params
	s, err := New(ts.validators, ts.pool, ts.oracle, ts.publisher,
		WithLogger(logtest.New(tb)),
		WithClock(clockwork.NewFakeClockAt(testStart)),
		WithConfig(cfg),
	)
	require.NoError(tb, err)
	ts.Slasher = s
	return ts
}

func testParams() Params {
	return Params{
		MisdemeanorThreshold: 2,
		FelonyThreshold:      5,
		DecayRate:            2,
		FinalityRewardRatio:  DefaultFinalityRewardRatio,
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MisdemeanorThreshold = cfg.FelonyThreshold
	_, err := New(nil, nil, nil, nil, WithConfig(cfg))
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestReportEscalationPeriodicity(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	validator := types.RandomValidatorID()

	var got []events.EventSlash
	ts.validators.EXPECT().IsCurrentMember(validator).Return(true).AnyTimes()
	ts.publisher.EXPECT().ReportSlash(gomock.Any()).DoAndReturn(func(ev events.EventSlash) {
		got = append(got, ev)
	}).AnyTimes()
	var misdemeanors, felonies int
	ts.validators.EXPECT().EscalateMisdemeanor(validator).Do(func(types.ValidatorID) {
		misdemeanors++
	}).AnyTimes()
	ts.validators.EXPECT().EscalateFelony(validator).Do(func(types.ValidatorID) {
		felonies++
	}).AnyTimes()

	var (
		expected []events.EventSlash
		count    uint64
	)
	for height := types.Height(1); height <= 23; height++ {
		require.NoError(t, ts.Report(context.Background(), validator, height))

		count++
		switch {
		case count%5 == 0:
			count = 0
			expected = append(expected, events.EventSlash{
				Validator: validator, Height: height, Timestamp: testStart, Kind: events.KindFelony,
			})
		case count%2 == 0:
			expected = append(expected, events.EventSlash{
				Validator: validator, Height: height, Timestamp: testStart, Kind: events.KindMisdemeanor,
			})
		}
		indicator, exists := ts.Indicator(validator)
		require.True(t, exists)
		require.Equal(t, Indicator{LastHeight: height, Count: count}, indicator)
	}
	require.Equal(t, expected, got)
	// heights 2, 4, 7, 9, 12, 14, 17, 19, 22
	require.Equal(t, 9, misdemeanors)
	// heights 5, 10, 15, 20
	require.Equal(t, 4, felonies)
}

func TestReportStaleHeight(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	validator := types.RandomValidatorID()
	ts.validators.EXPECT().IsCurrentMember(validator).Return(true).AnyTimes()

	require.ErrorIs(t, ts.Report(context.Background(), validator, 0), ErrStaleHeight)
	require.NoError(t, ts.Report(context.Background(), validator, 10))
	require.ErrorIs(t, ts.Report(context.Background(), validator, 10), ErrStaleHeight)
	require.ErrorIs(t, ts.Report(context.Background(), types.RandomValidatorID(), 9), ErrStaleHeight)

	indicator, exists := ts.Indicator(validator)
	require.True(t, exists)
	require.Equal(t, Indicator{LastHeight: 10, Count: 1}, indicator)
	require.Equal(t, types.Height(10), ts.Watermark())
}

func TestReportNotMember(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	validator := types.RandomValidatorID()
	ts.validators.EXPECT().IsCurrentMember(validator).Return(false)

	require.NoError(t, ts.Report(context.Background(), validator, 1))
	_, exists := ts.Indicator(validator)
	require.False(t, exists)
	require.Empty(t, ts.Indicators())
	// the height is consumed even though nothing was recorded
	require.ErrorIs(t, ts.Report(context.Background(), validator, 1), ErrStaleHeight)
}

func TestReportConcurrentSameHeight(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	ts.validators.EXPECT().IsCurrentMember(gomock.Any()).Return(true)

	const workers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ts.Report(context.Background(), types.RandomValidatorID(), 7); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, accepted)
	require.Len(t, ts.Indicators(), 1)
}

func TestReportCompactConcurrently(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	ts.validators.EXPECT().IsCurrentMember(gomock.Any()).Return(true).AnyTimes()
	ts.validators.EXPECT().EscalateMisdemeanor(gomock.Any()).AnyTimes()
	ts.validators.EXPECT().EscalateFelony(gomock.Any()).AnyTimes()
	ts.publisher.EXPECT().ReportSlash(gomock.Any()).AnyTimes()
	ts.publisher.EXPECT().ReportCompacted(gomock.Any()).AnyTimes()

	const (
		reports     = 2000
		compactions = 500
		workers     = 8
	)
	validators := make([]types.ValidatorID, 32)
	for i := range validators {
		validators[i] = types.RandomValidatorID()
	}

	var (
		wg       sync.WaitGroup
		height   atomic.Uint64
		maxTaken atomic.Uint64
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := w; i < reports; i += workers {
				h := types.Height(height.Add(1))
				err := ts.Report(context.Background(), validators[i%len(validators)], h)
				if err != nil {
					if !errors.Is(err, ErrStaleHeight) {
						t.Errorf("report at %d: %v", h, err)
					}
					continue
				}
				for {
					prev := maxTaken.Load()
					if h.Uint64() <= prev || maxTaken.CompareAndSwap(prev, h.Uint64()) {
						break
					}
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range compactions {
			ts.Compact(context.Background())
		}
	}()
	wg.Wait()

	requireConsistent(t, ts.indicators)
	require.Equal(t, types.Height(maxTaken.Load()), ts.Watermark())
	known := map[types.ValidatorID]struct{}{}
	for _, id := range validators {
		known[id] = struct{}{}
	}
	for _, indicator := range ts.Indicators() {
		require.Contains(t, known, indicator.Validator)
		require.Less(t, indicator.Count, ts.Params().FelonyThreshold)
		require.LessOrEqual(t, indicator.LastHeight, ts.Watermark())
	}
}

func TestCompact(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ts := newTestSlasher(t, testParams())
		require.Zero(t, ts.Compact(context.Background()))
	})

	t.Run("decay and remove", func(t *testing.T) {
		params := Params{
			MisdemeanorThreshold: 50,
			FelonyThreshold:      150,
			DecayRate:            4,
			FinalityRewardRatio:  DefaultFinalityRewardRatio,
		}
		require.EqualValues(t, 37, params.DecayAmount())
		ts := newTestSlasher(t, params)
		survivor, forgiven := types.RandomValidatorID(), types.RandomValidatorID()
		require.NoError(t, ts.Restore(Snapshot{
			Watermark: 100,
			Params:    params,
			Indicators: []ValidatorIndicator{
				{Validator: forgiven, Indicator: Indicator{LastHeight: 90, Count: 37}},
				{Validator: survivor, Indicator: Indicator{LastHeight: 99, Count: 40}},
			},
		}))

		ts.publisher.EXPECT().ReportCompacted(events.EventCompacted{Removed: 1, Remaining: 1})
		require.Equal(t, 1, ts.Compact(context.Background()))

		_, exists := ts.Indicator(forgiven)
		require.False(t, exists)
		indicator, exists := ts.Indicator(survivor)
		require.True(t, exists)
		require.Equal(t, Indicator{LastHeight: 99, Count: 3}, indicator)

		ts.publisher.EXPECT().ReportCompacted(events.EventCompacted{Removed: 1, Remaining: 0})
		require.Equal(t, 1, ts.Compact(context.Background()))
		require.Empty(t, ts.Indicators())
		require.Zero(t, ts.Compact(context.Background()))
	})

	t.Run("bounded number of passes", func(t *testing.T) {
		params := testParams()
		params.FelonyThreshold = 9
		params.DecayRate = 3
		ts := newTestSlasher(t, params)
		ts.publisher.EXPECT().ReportCompacted(gomock.Any()).AnyTimes()
		for _, count := range []uint64{1, 3, 4, 9, 10} {
			validator := types.RandomValidatorID()
			require.NoError(t, ts.Restore(Snapshot{
				Params:     params,
				Indicators: []ValidatorIndicator{{Validator: validator, Indicator: Indicator{Count: count}}},
			}))
			passes := 0
			for {
				passes++
				if ts.Compact(context.Background()) == 1 {
					break
				}
			}
			require.EqualValues(t, (count+2)/3, passes, "count %d", count)
		}
	})

	t.Run("felony reset is removed", func(t *testing.T) {
		ts := newTestSlasher(t, testParams())
		validator := types.RandomValidatorID()
		ts.validators.EXPECT().IsCurrentMember(validator).Return(true).AnyTimes()
		ts.validators.EXPECT().EscalateMisdemeanor(validator).Times(2)
		ts.validators.EXPECT().EscalateFelony(validator)
		ts.publisher.EXPECT().ReportSlash(gomock.Any()).Times(3)
		for height := types.Height(1); height <= 5; height++ {
			require.NoError(t, ts.Report(context.Background(), validator, height))
		}
		indicator, exists := ts.Indicator(validator)
		require.True(t, exists)
		require.Zero(t, indicator.Count)

		ts.publisher.EXPECT().ReportCompacted(events.EventCompacted{Removed: 1, Remaining: 0})
		require.Equal(t, 1, ts.Compact(context.Background()))
		_, exists = ts.Indicator(validator)
		require.False(t, exists)
	})
}

func TestUpdateParam(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		key   string
		value []byte
		err   error
		check func(*testing.T, Params)
	}{
		{
			desc:  "misdemeanor",
			key:   ParamMisdemeanorThreshold,
			value: EncodeParamValue(4),
			check: func(t *testing.T, p Params) { require.EqualValues(t, 4, p.MisdemeanorThreshold) },
		},
		{
			desc:  "misdemeanor not below felony",
			key:   ParamMisdemeanorThreshold,
			value: EncodeParamValue(5),
			err:   ErrInvalidParam,
		},
		{
			desc:  "misdemeanor zero",
			key:   ParamMisdemeanorThreshold,
			value: EncodeParamValue(0),
			err:   ErrInvalidParam,
		},
		{
			desc:  "felony",
			key:   ParamFelonyThreshold,
			value: EncodeParamValue(1000),
			check: func(t *testing.T, p Params) { require.EqualValues(t, 1000, p.FelonyThreshold) },
		},
		{
			desc:  "felony above max",
			key:   ParamFelonyThreshold,
			value: EncodeParamValue(1001),
			err:   ErrInvalidParam,
		},
		{
			desc:  "felony not above misdemeanor",
			key:   ParamFelonyThreshold,
			value: EncodeParamValue(2),
			err:   ErrInvalidParam,
		},
		{
			desc:  "ratio",
			key:   ParamFinalityRewardRatio,
			value: EncodeParamValue(10),
			check: func(t *testing.T, p Params) { require.EqualValues(t, 10, p.FinalityRewardRatio) },
		},
		{
			desc:  "ratio below min",
			key:   ParamFinalityRewardRatio,
			value: EncodeParamValue(9),
			err:   ErrInvalidParam,
		},
		{
			desc:  "ratio at max",
			key:   ParamFinalityRewardRatio,
			value: EncodeParamValue(100),
			err:   ErrInvalidParam,
		},
		{
			desc:  "decay rate",
			key:   ParamDecayRate,
			value: EncodeParamValue(5),
			check: func(t *testing.T, p Params) { require.EqualValues(t, 1, p.DecayAmount()) },
		},
		{
			desc:  "decay rate above felony",
			key:   ParamDecayRate,
			value: EncodeParamValue(6),
			err:   ErrInvalidParam,
		},
		{
			desc:  "short value",
			key:   ParamFelonyThreshold,
			value: []byte{0, 10},
			err:   ErrInvalidParam,
		},
		{
			desc:  "value overflows",
			key:   ParamFelonyThreshold,
			value: append([]byte{1}, make([]byte, 31)...),
			err:   ErrInvalidParam,
		},
		{
			desc:  "unknown",
			key:   "burnRatio",
			value: EncodeParamValue(10),
			err:   ErrUnknownParam,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			ts := newTestSlasher(t, testParams())
			if tc.err == nil {
				ts.publisher.EXPECT().ReportParamChange(gomock.Any()).Do(func(ev events.EventParamChange) {
					require.Equal(t, tc.key, ev.Key)
				})
			}
			err := ts.UpdateParam(context.Background(), tc.key, tc.value)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Equal(t, testParams(), ts.Params())
				return
			}
			require.NoError(t, err)
			tc.check(t, ts.Params())
		})
	}
}

func TestThresholds(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	misdemeanor, felony := ts.Thresholds()
	require.EqualValues(t, 2, misdemeanor)
	require.EqualValues(t, 5, felony)
}

func TestSnapshotRestore(t *testing.T) {
	ts := newTestSlasher(t, testParams())
	ids := []types.ValidatorID{types.RandomValidatorID(), types.RandomValidatorID()}
	ts.validators.EXPECT().IsCurrentMember(gomock.Any()).Return(true).AnyTimes()
	require.NoError(t, ts.Report(context.Background(), ids[0], 1))
	require.NoError(t, ts.Report(context.Background(), ids[1], 2))

	snapshot := ts.Snapshot()
	require.Equal(t, types.Height(2), snapshot.Watermark)
	require.Equal(t, testParams(), snapshot.Params)
	require.ElementsMatch(t, []ValidatorIndicator{
		{Validator: ids[0], Indicator: Indicator{LastHeight: 1, Count: 1}},
		{Validator: ids[1], Indicator: Indicator{LastHeight: 2, Count: 1}},
	}, snapshot.Indicators)

	restored := newTestSlasher(t, DefaultConfig().Params)
	require.NoError(t, restored.Restore(snapshot))
	require.Equal(t, snapshot, restored.Snapshot())

	t.Run("duplicate", func(t *testing.T) {
		broken := snapshot
		broken.Indicators = append([]ValidatorIndicator{}, snapshot.Indicators...)
		broken.Indicators = append(broken.Indicators, snapshot.Indicators[0])
		require.ErrorContains(t, restored.Restore(broken), "duplicate")
		require.Equal(t, snapshot, restored.Snapshot())
	})
	t.Run("invalid params", func(t *testing.T) {
		broken := snapshot
		broken.Params.DecayRate = 0
		require.ErrorIs(t, restored.Restore(broken), ErrInvalidParam)
	})
}
