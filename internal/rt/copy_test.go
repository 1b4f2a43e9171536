package rt_test

import (
	"testing"

	"github.com/vexlang/vexrt/internal/rt"
)

func TestSendMessageCopiesBufferContent(t *testing.T) {
	sender := newVM(t)
	receiver := newVM(t)

	buf := sender.AppendB8(sender.BufferAllocate(4), 0, 1, 0x42)
	rt.SendMessage(sender, receiver, buf)
	entry := receiver.RecvMessageFrom(sender)

	got := rt.GetMsg(entry)
	if receiver.PeekB8(got, 0) != 0x42 {
		t.Fatalf("copied buffer byte = %#x, want %#x", receiver.PeekB8(got, 0), 0x42)
	}
}

func TestSendMessageCopiesBits64(t *testing.T) {
	sender := newVM(t)
	receiver := newVM(t)

	rt.SendMessage(sender, receiver, sender.MakeBits64(0xDEADBEEF))
	entry := receiver.RecvMessageFrom(sender)

	obj := receiver.Deref(rt.GetMsg(entry))
	if obj.Bits64 != 0xDEADBEEF {
		t.Fatalf("Bits64 = %#x, want %#x", obj.Bits64, 0xDEADBEEF)
	}
}

func TestSendMessageCopiesStrOffset(t *testing.T) {
	sender := newVM(t)
	receiver := newVM(t)

	tail := sender.StrTail(sender.MakeString("hello"))
	rt.SendMessage(sender, receiver, tail)
	entry := receiver.RecvMessageFrom(sender)

	if got := receiver.GetStr(rt.GetMsg(entry)); got != "ello" {
		t.Fatalf("copied STROFFSET = %q, want %q", got, "ello")
	}
}

func TestSendMessageCopiesNullString(t *testing.T) {
	sender := newVM(t)
	receiver := newVM(t)

	rt.SendMessage(sender, receiver, sender.MakeNullString())
	entry := receiver.RecvMessageFrom(sender)

	if got := receiver.GetStr(rt.GetMsg(entry)); got != "" {
		t.Fatalf("copied null STRING = %q, want empty", got)
	}
}

func TestSendMessageCopiesNestedConFields(t *testing.T) {
	sender := newVM(t)
	receiver := newVM(t)

	inner := sender.MakeCon(1, []rt.Value{sender.MakeString("inner")})
	outer := sender.MakeCon(2, []rt.Value{inner, rt.MakeInt(5)})

	rt.SendMessage(sender, receiver, outer)
	entry := receiver.RecvMessageFrom(sender)

	got := receiver.Deref(rt.GetMsg(entry))
	if got.ConTag != 2 {
		t.Fatalf("ConTag = %d, want 2", got.ConTag)
	}
	innerGot := receiver.Deref(got.Fields[0])
	if innerGot.ConTag != 1 {
		t.Fatalf("inner ConTag = %d, want 1", innerGot.ConTag)
	}
	if receiver.GetStr(innerGot.Fields[0]) != "inner" {
		t.Fatalf("inner string = %q, want %q", receiver.GetStr(innerGot.Fields[0]), "inner")
	}
}
