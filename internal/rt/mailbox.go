package rt

import "time"

// MailboxEntry pairs a received Value with the VM that sent it.
// Ownership of Msg transfers to the receiving VM's heap on send: it was
// deep-copied there, so it is safe to hold until the receiver's next
// collection unless the receiver also roots it.
type MailboxEntry struct {
	Sender *VM
	Msg    Value
}

// recvWatchdogInterval is the periodic re-poll period recv_message uses
// so a receiver can never wait past a missed signal indefinitely.
const recvWatchdogInterval = 3 * time.Second

func (vm *VM) startWatchdog() {
	vm.done = make(chan struct{})
	go func() {
		t := time.NewTicker(recvWatchdogInterval)
		defer t.Stop()
		for {
			select {
			case <-vm.done:
				return
			case <-t.C:
				vm.inboxMu.Lock()
				vm.inboxCond.Broadcast()
				vm.inboxMu.Unlock()
			}
		}
	}()
}

// SendMessage implements the send protocol: snapshot the destination's
// collection counter, deep-copy under its allocation lock, redo the
// copy once if a collection raced it, then append to the destination's
// mailbox under its inbox lock and signal.
func SendMessage(src, dst *VM, msg Value) {
	gcs := dst.gcCounter()
	dst.lockAlloc()
	dmsg := deepCopy(src, dst, msg)
	dst.unlockAlloc()

	retries := 0
	if dst.gcCounter() > gcs {
		// dst collected mid-copy: the pointers doCopyTo built may have
		// been relocated out from under it. Redo once; the collection
		// that just ran guarantees room this time.
		retries = 1
		dst.lockAlloc()
		dmsg = deepCopy(src, dst, msg)
		dst.unlockAlloc()
	}

	dst.inboxMu.Lock()
	if len(dst.inbox) >= dst.inboxCap {
		dst.inboxMu.Unlock()
		fatal(errs.inboxFull(dst.inboxCap))
		return
	}
	dst.inbox = append(dst.inbox, MailboxEntry{Sender: src, Msg: dmsg})
	dst.inboxCond.Signal()
	dst.inboxMu.Unlock()

	if src.Tracer != nil {
		src.Tracer.TraceSend(src, dst, retries)
	}
}

// findMessageLocked returns the index of the first inbox entry matching
// sender (or any entry if sender is nil), or -1. Caller must hold
// vm.inboxMu.
func (vm *VM) findMessageLocked(sender *VM) int {
	for i, e := range vm.inbox {
		if sender == nil || e.Sender == sender {
			return i
		}
	}
	return -1
}

// CheckMessages implements check_messages: a non-blocking scan that
// returns the sender of a pending message, or nil.
func (vm *VM) CheckMessages() *VM { return vm.CheckMessagesFrom(nil) }

// CheckMessagesFrom implements check_messages_from, reading under the
// inbox lock rather than scanning the raw array unsynchronized.
func (vm *VM) CheckMessagesFrom(sender *VM) *VM {
	vm.inboxMu.Lock()
	defer vm.inboxMu.Unlock()
	if i := vm.findMessageLocked(sender); i >= 0 {
		return vm.inbox[i].Sender
	}
	return nil
}

// RecvMessage implements recv_message: block until any message arrives.
func (vm *VM) RecvMessage() *MailboxEntry { return vm.RecvMessageFrom(nil) }

// RecvMessageFrom implements recv_message_from: block on the inbox
// condition, periodically re-polling, until a matching entry exists;
// remove it by shifting later entries down (preserving order) and
// return an owned copy. If vm is terminated while a receiver is
// blocked, wake it with the "No messages waiting" fatal instead of
// hanging forever.
func (vm *VM) RecvMessageFrom(sender *VM) *MailboxEntry {
	vm.inboxMu.Lock()
	idx := vm.findMessageLocked(sender)
	for idx < 0 {
		if vm.terminated.Load() {
			vm.inboxMu.Unlock()
			fatal(errs.noMessages())
			return nil
		}
		vm.inboxCond.Wait()
		idx = vm.findMessageLocked(sender)
	}
	entry := vm.inbox[idx]
	vm.inbox = append(vm.inbox[:idx], vm.inbox[idx+1:]...)
	vm.inboxMu.Unlock()

	if vm.Tracer != nil {
		vm.Tracer.TraceRecv(vm, entry.Sender)
	}
	return &entry
}

// GetMsg implements get_msg.
func GetMsg(m *MailboxEntry) Value { return m.Msg }

// GetSender implements get_sender.
func GetSender(m *MailboxEntry) *VM { return m.Sender }

// FreeMsg implements free_msg. The Value itself is owned by the
// receiver's heap regardless; this only releases the *MailboxEntry
// wrapper.
func FreeMsg(m *MailboxEntry) { *m = MailboxEntry{} }
