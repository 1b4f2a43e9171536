package rt

import (
	"fmt"
	"io"
)

// Tracer receives runtime events. It is an optional field on VM, nil by
// default, so an unconfigured VM pays nothing for tracing: the heap and
// collector call out to vm.Tracer only when it is non-nil.
type Tracer interface {
	TraceHeapAlloc(vm *VM, h Handle, t Tag, bytes uint64)
	TraceHeapFree(vm *VM, h Handle, bytes uint64)
	TraceCollectStart(vm *VM)
	TraceCollectEnd(vm *VM, bytesLive uint64)
	TraceSend(src, dst *VM, retries int)
	TraceRecv(vm *VM, sender *VM)
}

// WriterTracer is the reference Tracer: plain fmt.Fprintf lines to an
// io.Writer.
type WriterTracer struct {
	W io.Writer
}

func (t *WriterTracer) TraceHeapAlloc(vm *VM, h Handle, tag Tag, bytes uint64) {
	fmt.Fprintf(t.W, "vm=%s alloc handle=%d tag=%s bytes=%d\n", vm.Name, h, tag, bytes)
}

func (t *WriterTracer) TraceHeapFree(vm *VM, h Handle, bytes uint64) {
	fmt.Fprintf(t.W, "vm=%s free handle=%d bytes=%d\n", vm.Name, h, bytes)
}

func (t *WriterTracer) TraceCollectStart(vm *VM) {
	fmt.Fprintf(t.W, "vm=%s gc-start\n", vm.Name)
}

func (t *WriterTracer) TraceCollectEnd(vm *VM, bytesLive uint64) {
	fmt.Fprintf(t.W, "vm=%s gc-end bytes-live=%d\n", vm.Name, bytesLive)
}

func (t *WriterTracer) TraceSend(src, dst *VM, retries int) {
	fmt.Fprintf(t.W, "send %s->%s retries=%d\n", src.Name, dst.Name, retries)
}

func (t *WriterTracer) TraceRecv(vm *VM, sender *VM) {
	fmt.Fprintf(t.W, "vm=%s recv from=%s\n", vm.Name, sender.Name)
}
