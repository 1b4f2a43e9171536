package rt

// Collect runs a full semi-space copying collection on h's owning VM:
// swap halves, forward every root, scavenge newly-copied objects, then
// update statistics. It runs on whichever goroutine is allocating into
// this heap: the owning VM's own thread, or a sender whose deep copy in
// SendMessage runs out of room in this VM's heap. It takes this VM's
// inbox lock while forwarding mailbox roots and never touches a peer
// VM's heap.
func (h *Heap) Collect() {
	vm := h.vm
	if vm != nil && vm.Tracer != nil {
		vm.Tracer.TraceCollectStart(vm)
	}

	from := h.active
	to := newSemispace(h.size)
	h.active, h.reserve = to, from

	fwd := make(map[Handle]Handle, len(from.slots)/2+1)
	scanned := 0

	forward := func(v Value) Value {
		if v.IsImmediate() || IsNullaryHandle(v.Handle()) {
			return v
		}
		return MakeHeap(forwardHandle(from, to, fwd, v.Handle()))
	}

	if vm != nil {
		for i := range vm.Stack {
			vm.Stack[i] = forward(vm.Stack[i])
		}
		vm.Ret = forward(vm.Ret)
		vm.Reg1 = forward(vm.Reg1)
		vm.inboxMu.Lock()
		for i := range vm.inbox {
			vm.inbox[i].Msg = forward(vm.inbox[i].Msg)
		}
		vm.inboxMu.Unlock()
	}

	// Scavenge: the copied objects already live in to.slots[1:]; scan
	// them in address order, forwarding every Value field. Copying a
	// referent during this scan appends further to to.slots, so the
	// frontier keeps advancing until it catches the write pointer.
	for scanned+1 < len(to.slots) {
		scanned++
		obj := to.slots[scanned]
		switch obj.Tag {
		case TagCon:
			for i, f := range obj.Fields {
				obj.Fields[i] = forward(f)
			}
		case TagStrOffset:
			obj.Root = forwardHandle(from, to, fwd, obj.Root)
		}
	}

	if vm != nil {
		h.Stats.Collections++
		h.Stats.BytesCopied = to.bytes
		h.Stats.BytesLive = to.bytes
		if vm.Tracer != nil {
			vm.Tracer.TraceCollectEnd(vm, to.bytes)
		}
	}
}

// forwardHandle resolves h to its post-collection location: if the
// object has already been relocated this cycle, it reuses the recorded
// target; otherwise it copies the object into to, stamps the old slot
// FWD, and records the mapping so any other root or field sharing the
// same object converges on the same copy. This is what keeps
// STROFFSET/CON sharing intact across a collection.
func forwardHandle(from, to *semispace, fwd map[Handle]Handle, h Handle) Handle {
	if !h.Valid() {
		return h
	}
	if nh, ok := fwd[h]; ok {
		return nh
	}
	old := from.get(h)
	if old.Tag == TagForward {
		return old.FwdTo
	}
	copied := copyObject(old)
	nh := to.push(copied, old.size)
	copied.selfHandle = nh
	fwd[h] = nh
	old.Tag = TagForward
	old.FwdTo = nh
	return nh
}

// copyObject makes a tag-specific copy of o into the destination
// semispace. CON copies its field slice (forwarded later during
// scavenge); STRING/BITS*/BUFFER/MANAGEDPTR/FLOAT copy their payload
// inline with no child references to forward. PTR and BIGINT copy the
// header only: PTR's payload is foreign, and BIGINT's lives in its own
// arena, where dupBig makes an independent magnitude copy so the two
// semi-spaces never alias limbs.
func copyObject(o *Object) *Object {
	n := *o
	if o.Fields != nil {
		n.Fields = append([]Value(nil), o.Fields...)
	}
	if o.Bytes != nil {
		n.Bytes = append([]byte(nil), o.Bytes...)
	}
	if o.Managed != nil {
		n.Managed = append([]byte(nil), o.Managed...)
	}
	if o.Buf != nil {
		n.Buf = append([]byte(nil), o.Buf...)
	}
	n.Big = dupBig(o.Big)
	n.Tag = o.Tag
	return &n
}
