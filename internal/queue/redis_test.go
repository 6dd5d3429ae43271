package queue

import (
	"errors"
	"testing"
)

func TestIsBusyGroupErr(t *testing.T) {
	t.Run("matches the BUSYGROUP server reply", func(t *testing.T) {
		err := errors.New("BUSYGROUP Consumer Group name already exists")
		if !isBusyGroupErr(err) {
			t.Fatal("expected BUSYGROUP reply to be recognized")
		}
	})

	t.Run("matches regardless of case", func(t *testing.T) {
		err := errors.New("busygroup consumer group name already exists")
		if !isBusyGroupErr(err) {
			t.Fatal("expected lowercase reply to be recognized")
		}
	})

	t.Run("rejects other errors", func(t *testing.T) {
		if isBusyGroupErr(errors.New("NOGROUP no such key")) {
			t.Fatal("unrelated error must not be treated as busy group")
		}
		if isBusyGroupErr(nil) {
			t.Fatal("nil must not be treated as busy group")
		}
	})
}
