package parse

import (
	"testing"
	"time"
)

func TestParseTwoMessages(t *testing.T) {
	chat := Parse("12/01/2023, 09:00 - Alice: Hello\n12/01/2023, 09:02 - Bob: Hi there!")

	if len(chat.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(chat.Messages))
	}
	if len(chat.Participants) != 2 || chat.Participants[0] != "Alice" || chat.Participants[1] != "Bob" {
		t.Fatalf("unexpected participants: %v", chat.Participants)
	}

	first := chat.Messages[0]
	if first.ID != 0 || first.Sender != "Alice" || first.Content != "Hello" {
		t.Fatalf("unexpected first message: %+v", first)
	}
	// ambiguous day/month defaults to day-first: 12 January
	want := time.Date(2023, time.January, 12, 9, 0, 0, 0, time.Local)
	if !first.Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", first.Timestamp, want)
	}
	if gap := chat.Messages[1].Timestamp.Sub(first.Timestamp); gap != 2*time.Minute {
		t.Fatalf("expected 2m gap, got %v", gap)
	}
}

func TestParseContinuationLines(t *testing.T) {
	text := "12/01/2023, 09:00 - Alice: first line\nsecond line\n\nthird line\n12/01/2023, 09:05 - Bob: ok"
	chat := Parse(text)

	if len(chat.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(chat.Messages))
	}
	msg := chat.Messages[0]
	if msg.Content != "first line\nsecond line\nthird line" {
		t.Fatalf("unexpected content: %q", msg.Content)
	}
	if msg.WordCount != 6 {
		t.Fatalf("expected word count 6 after continuations, got %d", msg.WordCount)
	}
}

func TestParseContinuationBeforeAnyMessageDropped(t *testing.T) {
	chat := Parse("orphan line\n12/01/2023, 09:00 - Alice: Hello")
	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.Messages))
	}
	if chat.Messages[0].Content != "Hello" {
		t.Fatalf("orphan line leaked into content: %q", chat.Messages[0].Content)
	}
}

func TestParseNoMatchingLines(t *testing.T) {
	chat := Parse("just some notes\nnothing chat shaped here\n")
	if len(chat.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(chat.Messages))
	}
	if len(chat.Participants) != 0 {
		t.Fatalf("expected no participants, got %v", chat.Participants)
	}
}

func TestParseBracketedFormat(t *testing.T) {
	chat := Parse("[25/12/2023, 18:30:45] Alice: merry christmas")
	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.Messages))
	}
	want := time.Date(2023, time.December, 25, 18, 30, 45, 0, time.Local)
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestParseISOFormat(t *testing.T) {
	chat := Parse("2023-07-04 08:15:00 - Bob: morning")
	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.Messages))
	}
	want := time.Date(2023, time.July, 4, 8, 15, 0, 0, time.Local)
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestParseDottedEuropeanFormat(t *testing.T) {
	chat := Parse("31.12.23, 23:59 - Alice: almost midnight")
	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.Messages))
	}
	want := time.Date(2023, time.December, 31, 23, 59, 0, 0, time.Local)
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestParseMeridiemClock(t *testing.T) {
	cases := []struct {
		line string
		hour int
	}{
		{"1/2/23, 12:00 AM - Alice: midnight", 0},
		{"1/2/23, 12:30 PM - Alice: lunch", 12},
		{"1/2/23, 9:05 PM - Alice: evening", 21},
		{"1/2/23, 9:05 AM - Alice: morning", 9},
	}
	for _, c := range cases {
		chat := Parse(c.line)
		if len(chat.Messages) != 1 {
			t.Fatalf("%q: expected 1 message, got %d", c.line, len(chat.Messages))
		}
		if got := chat.Messages[0].Timestamp.Hour(); got != c.hour {
			t.Fatalf("%q: hour = %d, want %d", c.line, got, c.hour)
		}
	}
}

func TestParseDayFirstWhenFirstComponentOver12(t *testing.T) {
	chat := Parse("13/01/2023, 10:00 - Alice: hi")
	want := time.Date(2023, time.January, 13, 10, 0, 0, 0, time.Local)
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestParseMonthFirstWhenSecondComponentOver12(t *testing.T) {
	chat := Parse("01/13/2023, 10:00 - Alice: hi")
	want := time.Date(2023, time.January, 13, 10, 0, 0, 0, time.Local)
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestParseTwoDigitYearDefaultsMonthFirst(t *testing.T) {
	chat := Parse("3/4/23, 10:00 - Alice: hi")
	want := time.Date(2023, time.March, 4, 10, 0, 0, 0, time.Local)
	if !chat.Messages[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp: got %v want %v", chat.Messages[0].Timestamp, want)
	}
}

func TestMessageFlags(t *testing.T) {
	chat := Parse("12/01/2023, 09:00 - Alice: <Media omitted>\n" +
		"12/01/2023, 09:01 - Bob: where are you?\n" +
		"12/01/2023, 09:02 - Alice: on my way \U0001F600")

	if !chat.Messages[0].IsMedia {
		t.Fatal("media placeholder not flagged")
	}
	if !chat.Messages[1].IsQuestion {
		t.Fatal("question not flagged")
	}
	if chat.Messages[1].HasEmoji {
		t.Fatal("false emoji flag")
	}
	if !chat.Messages[2].HasEmoji {
		t.Fatal("emoji not flagged")
	}
}

func TestIsQuestionWordHeuristic(t *testing.T) {
	if !IsQuestion("when do we leave") {
		t.Fatal("question word not detected")
	}
	if IsQuestion("fine by me") {
		t.Fatal("plain statement flagged as question")
	}
}

func TestSenderTrimmedAndFirstSeenOrder(t *testing.T) {
	chat := Parse("12/01/2023, 09:00 - Bob: one\n" +
		"12/01/2023, 09:01 - Alice: two\n" +
		"12/01/2023, 09:02 - Bob: three")
	if len(chat.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %v", chat.Participants)
	}
	if chat.Participants[0] != "Bob" || chat.Participants[1] != "Alice" {
		t.Fatalf("participants not in first-seen order: %v", chat.Participants)
	}
}

func TestMessageIDsContiguous(t *testing.T) {
	chat := Parse("12/01/2023, 09:00 - A: x\ncont\n12/01/2023, 09:01 - B: y\n12/01/2023, 09:02 - A: z")
	for i, m := range chat.Messages {
		if m.ID != i {
			t.Fatalf("message %d has id %d", i, m.ID)
		}
	}
}

func TestSniff(t *testing.T) {
	rep := Sniff("12/01/2023, 09:00 - Alice: Hello\nnot a message\n\n[25/12/2023, 18:30:45] Bob: hi")
	if rep.NonEmpty != 3 {
		t.Fatalf("non-empty = %d, want 3", rep.NonEmpty)
	}
	if rep.Matched != 2 {
		t.Fatalf("matched = %d, want 2", rep.Matched)
	}
	if len(rep.Unmatched) != 1 || rep.Unmatched[0] != "not a message" {
		t.Fatalf("unexpected unmatched samples: %v", rep.Unmatched)
	}
}
