package tm74hc595

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintYO(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	require.NoError(t, d.Print(Text("YO!"), &PrintOpts{Duration: time.Second, Clear: ClearNever}))

	assert.Equal(t, []DigitMask{8, 4, 2}, b.digits())
	assert.Equal(t, []byte{0x6E, 0x3F, 0x82}, b.segs())
}

func TestPrintAutoClear(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		clear ClearMode
		want  []DigitMask
	}{
		{"auto, several glyphs", "YO!", ClearAuto, []DigitMask{8, 4, 2, 8 | 4 | 2}},
		{"auto, one glyph", "Y", ClearAuto, []DigitMask{8}},
		{"always", "Y", ClearAlways, []DigitMask{8, 8}},
		{"never", "YO", ClearNever, []DigitMask{8, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, b, _ := newTestDev(t, nil)
			require.NoError(t, d.Print(Text(tt.text), &PrintOpts{Duration: time.Second, Clear: tt.clear}))
			assert.Equal(t, tt.want, b.digits())
		})
	}
}

func TestPrintRefreshesUntilBudget(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	clk.step = 10

	require.NoError(t, d.Print(Text("12"), &PrintOpts{Duration: 100 * time.Millisecond, Clear: ClearNever}))
	// The start tick is read once, then one tick per pass: 10 passes.
	assert.Len(t, b.frames, 20)
	for i := 0; i < len(b.frames); i += 2 {
		assert.Equal(t, DigitMask(8), b.frames[i].digits)
		assert.Equal(t, DigitMask(4), b.frames[i+1].digits)
	}
}

func TestPrintPositions(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want []DigitMask
	}{
		{"offset", "12", 1, []DigitMask{4, 2}},
		{"runs off the end", "123", 2, []DigitMask{2, 1}},
		{"entirely off", "1", 4, nil},
		{"right aligned", "12", -1, []DigitMask{2, 1}},
		{"right aligned, shifted", "12", -2, []DigitMask{4, 2}},
		{"right aligned, clipped left", "12345", -1, []DigitMask{8, 4, 2, 1}},
		{"right aligned, mostly off", "123", -4, []DigitMask{8}},
		{"right aligned, entirely off", "123", -6, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, b, _ := newTestDev(t, nil)
			require.NoError(t, d.Print(Text(tt.text), &PrintOpts{Pos: tt.pos, Duration: time.Second, Clear: ClearNever}))
			if tt.want == nil {
				assert.Empty(t, b.frames)
				return
			}
			assert.Equal(t, tt.want, b.digits())
		})
	}
}

func TestPrintRightAlignedGlyphs(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	require.NoError(t, d.Print(Text("12345"), &PrintOpts{Pos: -1, Duration: time.Second, Clear: ClearNever}))
	// The first glyph falls off the left edge.
	assert.Equal(t, []byte(glyphs(t, d, "2345")), b.segs())
}

func TestPrintZeroDurationOnlyPlaces(t *testing.T) {
	d, b, _ := newTestDev(t, nil)

	a, err := d.NewPrint(Text("123"), &PrintOpts{Pos: 2, Duration: 0, Clear: ClearNever})
	require.NoError(t, err)
	require.NoError(t, Play(context.Background(), a))

	assert.Empty(t, b.frames)
	assert.Equal(t, DigitMask(2|1), a.Touched())
}

func TestPrintZeroDurationClears(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	require.NoError(t, d.Print(Text("12"), &PrintOpts{Duration: 0}))
	// Nothing is lit, but the digits that would have been are cleared.
	assert.Equal(t, []frame{{seg: 0, digits: 8 | 4, bits: 16}}, b.frames)
}

func TestPrintFade(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	fade := []byte{0x01, 0x0F, 0xFF}
	require.NoError(t, d.Print(Text("8"), &PrintOpts{Duration: time.Second, Fade: fade}))

	assert.Equal(t, []byte{0x7F & 0x01, 0x7F & 0x0F, 0x7F}, b.segs())
}

func TestPrintEmptyFade(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	require.NoError(t, d.Print(Text("88"), &PrintOpts{Duration: time.Second, Fade: []byte{}}))
	assert.Empty(t, b.frames)
}

func TestPrintDefaults(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	clk.step = 250

	require.NoError(t, d.Print(Text("8"), nil))
	// One second at 250ms per pass, single glyph left lit.
	assert.Len(t, b.frames, 4)
}

func TestPrintEncodeError(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	assert.ErrorIs(t, d.Print(Text("#Z"), nil), ErrBadEscape)
	assert.Empty(t, b.frames)
}

func TestPrintStepByStep(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	clk.step = 500

	a, err := d.NewPrint(Text("12"), &PrintOpts{Duration: time.Second})
	require.NoError(t, err)

	done, err := a.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Len(t, b.frames, 2)

	done, err = a.Step()
	require.NoError(t, err)
	assert.True(t, done)
	// Second pass, then the clear.
	assert.Len(t, b.frames, 5)

	done, err = a.Step()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Len(t, b.frames, 5)
}

func TestPlayCancelled(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	clk.step = 1

	a, err := d.NewPrint(Text("12"), &PrintOpts{Duration: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, err = a.Step()
	require.NoError(t, err)
	cancel()

	assert.ErrorIs(t, Play(ctx, a), context.Canceled)
	assert.Len(t, b.frames, 2)
}

func TestBudgetWraparound(t *testing.T) {
	clk := &fakeClock{now: 0xFFFFFFF0, step: 8}
	bg := budget{clk: clk, d: time.Hour}
	bg.start()

	// 0xFFFFFFF8: still counting.
	assert.False(t, bg.expired())
	// Wrapped: one more pass.
	assert.False(t, bg.expired())
	// Still below the start tick: done, no stall.
	assert.True(t, bg.expired())
}

func TestBudgetNonPositive(t *testing.T) {
	clk := &fakeClock{step: 1}
	for _, dur := range []time.Duration{0, -time.Second} {
		bg := budget{clk: clk, d: dur}
		bg.start()
		assert.True(t, bg.expired())
	}
}

func TestBlast(t *testing.T) {
	d, b, clk := newTestDev(t, &Opts{Count: 1, ActiveHigh: true})
	require.NoError(t, d.Blast(Text("AB"), &BlastOpts{Digits: 1, Duration: 200 * time.Millisecond}))

	// Every glyph on the same digit, then the clear.
	assert.Equal(t, []DigitMask{1, 1, 1}, b.digits())
	assert.Equal(t, []byte{0x77, 0x7F, 0x00}, b.segs())
	assert.Equal(t, []time.Duration{200 * time.Millisecond, 200 * time.Millisecond}, clk.slept)
}

func TestBlastDefaults(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	require.NoError(t, d.Blast(Text("8"), nil))

	assert.Equal(t, []DigitMask{AllDigits}, b.digits())
	assert.Equal(t, []time.Duration{time.Second}, clk.slept)
}

func TestBlastMessage(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	msg := Message{0x01, 0x02, 0x40}
	require.NoError(t, d.Blast(msg, &BlastOpts{Digits: 0x06, Clear: ClearNever}))

	assert.Equal(t, []byte{0x01, 0x02, 0x40}, b.segs())
	assert.Equal(t, []DigitMask{6, 6, 6}, b.digits())
}

func TestFlash(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	o := &FlashOpts{On: time.Second, Off: 300 * time.Millisecond, Count: 2}
	require.NoError(t, d.Flash(Text("HI"), o))

	want := []DigitMask{
		AllDigits,
		8, 4, 8 | 4,
		8, 4, 8 | 4,
	}
	assert.Equal(t, want, b.digits())
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 300 * time.Millisecond}, clk.slept)
}

func TestFlashSingleGlyphIsCleared(t *testing.T) {
	d, b, _ := newTestDev(t, nil)
	require.NoError(t, d.Flash(Text("8"), &FlashOpts{Pos: 3, On: time.Second, Count: 1}))
	assert.Equal(t, []DigitMask{AllDigits, 1, 1}, b.digits())
}

func TestFlashZeroCount(t *testing.T) {
	d, b, clk := newTestDev(t, nil)
	require.NoError(t, d.Flash(Text("8"), &FlashOpts{On: time.Second, Off: time.Second}))
	assert.Equal(t, []DigitMask{AllDigits}, b.digits())
	assert.Empty(t, clk.slept)
}
