package testutil

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFakeCommander_ExactMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("bash --version", "GNU bash, version 5.2\n", nil)

	out, err := fc.Run(context.Background(), "bash", "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "GNU bash, version 5.2\n" {
		t.Errorf("got %q", string(out))
	}
}

func TestFakeCommander_PrefixMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("bash", "any", nil)
	fc.Register("bash --version", "longest", nil)

	out, err := fc.Run(context.Background(), "bash", "--version", "--extra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "longest" {
		t.Errorf("longest prefix should win, got %q", out)
	}
}

func TestFakeCommander_NoMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()

	_, err := fc.Run(context.Background(), "unknown", "command")
	if err == nil {
		t.Fatal("expected error for unregistered command")
	}
}

func TestFakeCommander_DefaultResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: []byte("default"), Err: nil}

	out, err := fc.Run(context.Background(), "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "default" {
		t.Errorf("got %q, want %q", string(out), "default")
	}
}

func TestFakeCommander_RecordsCalls(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: nil, Err: nil}

	fc.Run(context.Background(), "bash", "--version")
	fc.Run(context.Background(), "zsh", "--version")

	if len(fc.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(fc.Calls))
	}
	if !fc.Called("bash") {
		t.Error("expected bash to be called")
	}
	if fc.CallCount("zsh") != 1 {
		t.Errorf("expected 1 zsh call, got %d", fc.CallCount("zsh"))
	}
}

func TestFakeCommander_ErrorResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("fish --version", "fish: not found\n", fmt.Errorf("exit status 127"))

	out, err := fc.Run(context.Background(), "fish", "--version")
	if err == nil {
		t.Fatal("expected error")
	}
	if string(out) != "fish: not found\n" {
		t.Errorf("got %q", string(out))
	}
}

func TestFakeExecer_RecordsCalls(t *testing.T) {
	t.Parallel()

	fe := &FakeExecer{}
	if err := fe.Exec("bash", []string{"bash", "--init-file", "/s/rc.sh"}, []string{"A=1", "B=x=y"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fe.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fe.Calls))
	}
	if fe.Last().Argv[2] != "/s/rc.sh" {
		t.Errorf("unexpected argv: %v", fe.Last().Argv)
	}
	if v, ok := fe.EnvValue("B"); !ok || v != "x=y" {
		t.Errorf("EnvValue(B) = %q, %v", v, ok)
	}
	if _, ok := fe.EnvValue("C"); ok {
		t.Error("C should not be present")
	}
}

func TestFakeExecer_Err(t *testing.T) {
	t.Parallel()

	want := errors.New("no such file")
	fe := &FakeExecer{Err: want}
	if err := fe.Exec("bash", []string{"bash"}, nil); !errors.Is(err, want) {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestFakePrompter_Queues(t *testing.T) {
	t.Parallel()

	fp := &FakePrompter{Picks: []string{"work", ""}, Confirms: []bool{true}}

	choice, ok, err := fp.Pick("select", []string{"home", "work"})
	if err != nil || !ok || choice != "work" {
		t.Fatalf("first pick = %q, %v, %v", choice, ok, err)
	}

	_, ok, err = fp.Pick("select", []string{"home"})
	if err != nil || ok {
		t.Fatalf("second pick should be a cancel, got ok=%v err=%v", ok, err)
	}

	yes, err := fp.Confirm("delete?")
	if err != nil || !yes {
		t.Fatalf("confirm = %v, %v", yes, err)
	}

	if _, err := fp.Confirm("again?"); err == nil {
		t.Fatal("expected error when the confirm queue is empty")
	}
	if len(fp.Messages) != 2 || len(fp.Candidates) != 2 {
		t.Errorf("calls not recorded: %v %v", fp.Messages, fp.Candidates)
	}
}

func TestFakePrompter_NoCandidates(t *testing.T) {
	t.Parallel()

	fp := &FakePrompter{}
	_, ok, err := fp.Pick("select", nil)
	if err != nil || ok {
		t.Fatalf("got ok=%v err=%v", ok, err)
	}
}
