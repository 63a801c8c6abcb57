package diff

import (
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOpcodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous string
		current  string
		want     []Opcode
	}{
		{name: "both empty", previous: "", current: "", want: nil},
		{name: "identical", previous: "abc", current: "abc", want: []Opcode{{Tag: Equal, OldEnd: 3, NewEnd: 3}}},
		{
			name:     "insert in middle",
			previous: "abc",
			current:  "abxc",
			want: []Opcode{
				{Tag: Equal, OldStart: 0, OldEnd: 2, NewStart: 0, NewEnd: 2},
				{Tag: Insert, OldStart: 2, OldEnd: 2, NewStart: 2, NewEnd: 3},
				{Tag: Equal, OldStart: 2, OldEnd: 3, NewStart: 3, NewEnd: 4},
			},
		},
		{
			name:     "delete at end",
			previous: "abcd",
			current:  "ab",
			want: []Opcode{
				{Tag: Equal, OldStart: 0, OldEnd: 2, NewStart: 0, NewEnd: 2},
				{Tag: Delete, OldStart: 2, OldEnd: 4, NewStart: 2, NewEnd: 2},
			},
		},
		{
			name:     "from empty",
			previous: "",
			current:  "new",
			want:     []Opcode{{Tag: Insert, NewEnd: 3}},
		},
		{
			name:     "tie picks earliest block in old text",
			previous: "ab",
			current:  "ba",
			want: []Opcode{
				{Tag: Insert, OldStart: 0, OldEnd: 0, NewStart: 0, NewEnd: 1},
				{Tag: Equal, OldStart: 0, OldEnd: 1, NewStart: 1, NewEnd: 2},
				{Tag: Delete, OldStart: 1, OldEnd: 2, NewStart: 2, NewEnd: 2},
			},
		},
		{
			name:     "replace splits into delete then insert",
			previous: "x1y",
			current:  "x2y",
			want: []Opcode{
				{Tag: Equal, OldStart: 0, OldEnd: 1, NewStart: 0, NewEnd: 1},
				{Tag: Delete, OldStart: 1, OldEnd: 2, NewStart: 1, NewEnd: 1},
				{Tag: Insert, OldStart: 2, OldEnd: 2, NewStart: 1, NewEnd: 2},
				{Tag: Equal, OldStart: 2, OldEnd: 3, NewStart: 2, NewEnd: 3},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Compute(tc.previous, tc.current)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.current, Apply(tc.previous, tc.current, got))
		})
	}
}

func TestComputePlaceholderReplacement(t *testing.T) {
	t.Parallel()

	previous := "Hello <name>,"
	current := "Hello World,"

	spans := Spans(previous, current, Compute(previous, current), 0)

	require.Len(t, spans, 2)
	assert.Equal(t, Span{Tag: Delete, Text: "<name>", Start: 6, End: 12}, spans[0])
	assert.Equal(t, Span{Tag: Insert, Text: "World", Start: 6, End: 11}, spans[1])
}

func TestApplyReproducesCurrentForRandomTexts(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("ab c\n<>é世")
	randomText := func() string {
		n := rng.Intn(40)
		out := make([]rune, n)
		for i := range out {
			out[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(out)
	}

	for i := 0; i < 500; i++ {
		previous, current := randomText(), randomText()
		ops := Compute(previous, current)
		require.Equal(t, current, Apply(previous, current, ops), "previous=%q current=%q", previous, current)
		assertCovers(t, previous, current, ops)
	}
}

func TestApplyReproducesInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous string
		current  string
	}{
		{name: "insert after invalid byte", previous: "ab\xffc", current: "ab\xffXc"},
		{name: "delete invalid byte", previous: "a\xfe\xffb", current: "a\xffb"},
		{name: "truncated rune", previous: "caf\xc3", current: "café"},
		{name: "replace invalid with valid", previous: "\xff\xff", current: "é"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ops := Compute(tc.previous, tc.current)
			assert.Equal(t, tc.current, Apply(tc.previous, tc.current, ops))
			assertCovers(t, tc.previous, tc.current, ops)
		})
	}
}

func TestSpansKeepInvalidBytes(t *testing.T) {
	t.Parallel()

	previous := "ab\xffc"
	current := "ab\xffXc"

	spans := Spans(previous, current, Compute(previous, current), 2)

	require.Len(t, spans, 1)
	assert.Equal(t, Span{Tag: Insert, Text: "X", Start: 3, End: 4, Before: "b\xff", After: "c"}, spans[0])
}

func TestComputeLargeDocumentDiffsOnlyTheEdit(t *testing.T) {
	t.Parallel()

	previous := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 1112)
	mid := len(previous) / 2
	current := previous[:mid] + "X" + previous[mid:]

	done := make(chan []Opcode, 1)
	go func() { done <- Compute(previous, current) }()

	select {
	case ops := <-done:
		assert.Equal(t, []Opcode{
			{Tag: Equal, OldStart: 0, OldEnd: mid, NewStart: 0, NewEnd: mid},
			{Tag: Insert, OldStart: mid, OldEnd: mid, NewStart: mid, NewEnd: mid + 1},
			{Tag: Equal, OldStart: mid, OldEnd: len(previous), NewStart: mid + 1, NewEnd: len(current)},
		}, ops)
	case <-time.After(2 * time.Second):
		t.Fatalf("diff of %d runes did not finish in time", len(previous))
	}
}

func BenchmarkComputeLargeDocument(b *testing.B) {
	previous := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 1112)
	mid := len(previous) / 2
	current := previous[:mid] + "X" + previous[mid:]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compute(previous, current)
	}
}

func TestComputeWithAutoJunkStillReproducesCurrent(t *testing.T) {
	t.Parallel()

	previous := ""
	for i := 0; i < 30; i++ {
		previous += "the quick brown fox. "
	}
	current := previous[:100] + "lazy dog " + previous[100:]

	ops := ComputeWith(previous, current, Options{AutoJunk: true})
	assert.Equal(t, current, Apply(previous, current, ops))
}

func TestComputeIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ops := Compute("the cat sat", "the bat sat down")
			assert.Equal(t, "the bat sat down", Apply("the cat sat", "the bat sat down", ops))
		}()
	}
	wg.Wait()
}

func TestSpansCaptureContext(t *testing.T) {
	t.Parallel()

	previous := "Dear Sir, thanks."
	current := "Dear Madam, thanks."

	spans := Spans(previous, current, Compute(previous, current), 4)

	require.NotEmpty(t, spans)
	for _, span := range spans {
		switch span.Tag {
		case Insert:
			assert.Equal(t, span.Text, string([]rune(current)[span.Start:span.End]))
			assert.True(t, len([]rune(span.Before)) <= 4)
		case Delete:
			assert.Equal(t, span.Text, string([]rune(previous)[span.Start:span.End]))
		}
	}
}

func TestTagString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "unknown", Tag(9).String())
}

func assertCovers(t *testing.T, previous, current string, ops []Opcode) {
	t.Helper()

	oldPos, newPos := 0, 0
	for _, op := range ops {
		require.Equal(t, oldPos, op.OldStart)
		require.Equal(t, newPos, op.NewStart)
		oldPos, newPos = op.OldEnd, op.NewEnd
	}
	assert.Equal(t, len(split(previous)), oldPos)
	assert.Equal(t, len(split(current)), newPos)
}
