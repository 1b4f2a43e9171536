package rt

// Push appends v to the stack, failing fatally on overflow.
func (vm *VM) Push(v Value) {
	if len(vm.Stack) >= vm.StackMax {
		fatal(errs.stackOverflow(vm.StackMax))
		return
	}
	vm.Stack = append(vm.Stack, v)
}

// Pop removes and returns the top of the stack.
func (vm *VM) Pop() Value {
	n := len(vm.Stack) - 1
	v := vm.Stack[n]
	vm.Stack = vm.Stack[:n]
	return v
}

// Top returns TOP(i): the Value i slots above the current base. base
// is always 0 here since a VM has one flat value stack rather than
// separate call-frame bases; a caller wanting frame-relative
// addressing passes base+i.
func (vm *VM) Top(i int) Value { return vm.Stack[i] }

// SetTop writes to TOP(i), growing the stack if needed.
func (vm *VM) SetTop(i int, v Value) {
	for len(vm.Stack) <= i {
		vm.Push(Nil)
	}
	vm.Stack[i] = v
}

// Loc is an alias for Top used at call sites that are indexing into the
// current frame's locals rather than the value stack proper; LOC(i) and
// TOP(i) resolve to the same base+offset arithmetic.
func (vm *VM) Loc(i int) Value { return vm.Top(i) }

// Project implements PROJECT(r, loc, arity): unpack a CON's fields into
// arity contiguous stack slots starting at loc.
func (vm *VM) Project(con Value, loc, arity int) {
	obj := vm.Deref(con)
	for i := 0; i < arity; i++ {
		vm.SetTop(loc+i, obj.Fields[i])
	}
}

// Slide implements SLIDE(n): copy the top n slots down to stack[0:n),
// truncating the rest. Used to tail-call without growing the stack.
func (vm *VM) Slide(n int) {
	top := len(vm.Stack)
	copy(vm.Stack[0:n], vm.Stack[top-n:top])
	vm.Stack = vm.Stack[:n]
}
