package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/dates"
)

const weekLog = `2024-03-28T09:00:00Z	*~*~*--------------------
2024-03-28T17:00:00Z	Thursday wrap-up
2024-03-29T09:00:00Z	*~*~*--------------------
2024-03-29T10:30:00Z	Friday "demo" <prep>
2024-04-01T08:00:00Z	*~*~*--------------------
2024-04-01T08:20:05Z	Monday email
`

func TestShowCommandDateArguments(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "fri", "0")

	want := "2024-03-29T09:00:00Z\t00:00\t*~*~*--------------------\n" +
		"2024-03-29T10:30:00Z\t01:30\tFriday \"demo\" <prep>\n" +
		"2024-04-01T08:00:00Z\t00:00\t*~*~*--------------------\n" +
		"2024-04-01T08:20:05Z\t00:20\tMonday email\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestShowCommandRangeIsNormalized(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "--range", "03-29,2024-03-28")

	assertContains(t, out, "Thursday wrap-up")
	assertContains(t, out, "Friday")
	assertNotContains(t, out, "Monday email")

	out = executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "-r", "fri", "-r", "thu")
	assertContains(t, out, "Thursday wrap-up")
	assertContains(t, out, "Friday")
	assertNotContains(t, out, "Monday email")
}

func TestShowCommandCombinesDatesAndRanges(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "today", "--range", "thu,thu")

	want := "2024-03-28T09:00:00Z\t00:00\t*~*~*--------------------\n" +
		"2024-03-28T17:00:00Z\t08:00\tThursday wrap-up\n" +
		"2024-04-01T08:00:00Z\t00:00\t*~*~*--------------------\n" +
		"2024-04-01T08:20:05Z\t00:20\tMonday email\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestShowCommandSeconds(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "--seconds", "today")

	want := "2024-04-01T08:00:00Z\t0\t*~*~*--------------------\n" +
		"2024-04-01T08:20:05Z\t1205\tMonday email\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestShowCommandJSON(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "--json", "1")
	want := `{"begin":"2024-03-29T09:00:00Z","duration":"00:00","text":"*~*~*--------------------"}` + "\n" +
		`{"begin":"2024-03-29T10:30:00Z","duration":"01:30","text":"Friday \"demo\" <prep>"}` + "\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}

	out = executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "--json", "-s", "thu")
	assertContains(t, out, `"seconds":0,`)
	assertContains(t, out, `{"begin":"2024-03-28T17:00:00Z","seconds":28800,"text":"Thursday wrap-up"}`)
}

func TestShowCommandEmptySelection(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "yesterday")
	if out != "" {
		t.Fatalf("expected no output for a day without entries, got %q", out)
	}
}

func TestShowCommandDateErrors(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	tests := []struct {
		args []string
		want error
	}{
		{[]string{"1000"}, dates.ErrDateOutOfRange},
		{[]string{"someday"}, dates.ErrUnrecognizedDate},
		{[]string{"2024-02-30"}, dates.ErrInvalidCalendarDate},
	}
	for _, tt := range tests {
		_, err := executeCommandErr(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), tt.args...)
		if !errors.Is(err, tt.want) {
			t.Fatalf("show %q error = %v, want %v", tt.args, err, tt.want)
		}
	}

	_, err := executeCommandErr(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "-r", "mon")
	if err == nil || !strings.Contains(err.Error(), "START END") {
		t.Fatalf("odd range error = %v", err)
	}

	_, err = executeCommandErr(t, newShowCommand(context.Background(), mgr, at(t, 12, 0)), "-r", "mon,someday")
	if !errors.Is(err, dates.ErrUnrecognizedDate) {
		t.Fatalf("bad range bound error = %v", err)
	}
}

func TestLastCommandPrintsMostRecentFirst(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newLastCommand(context.Background(), mgr, at(t, 12, 0)), "2")
	want := "2024-04-01T08:20:05Z\tMonday email\n" +
		"2024-04-01T08:00:00Z\t*~*~*--------------------\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestLastCommandElapsedOnlyForToday(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	out := executeCommand(t, newLastCommand(context.Background(), mgr, at(t, 12, 0)))
	if out != "Elapsed: 3:39\n" {
		t.Fatalf("output = %q", out)
	}

	// The next day has no entries yet.
	tuesday := clock.Fixed(time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC))
	out = executeCommand(t, newLastCommand(context.Background(), mgr, tuesday))
	if out != "" {
		t.Fatalf("expected no output when the last entry is not today, got %q", out)
	}
}

func TestLastCommandRejectsBadCount(t *testing.T) {
	mgr := newTempManagerWith(t, weekLog)

	_, err := executeCommandErr(t, newLastCommand(context.Background(), mgr, at(t, 12, 0)), "many")
	if err == nil || !strings.Contains(err.Error(), `invalid count "many"`) {
		t.Fatalf("error = %v", err)
	}
}
