package vm

import "io"

// Step fetches, decodes, and executes exactly one instruction from
// segment 0 at the current program counter. It advances the program
// counter by one except after load-program (which sets it explicitly)
// and halt (which stops the machine). It returns the error that ended
// the machine if this step trapped or halted it, and nil otherwise.
//
// Out-of-range offsets and unmapped identifiers (including a program
// counter past the end of segment 0) are caught by the segment table and
// come back as ErrSegmentFault or ErrUnmappedSegment. Step does not
// recover from a runtime panic on its own; Run does.
func (m *Machine) Step() error {
	if m.err != nil {
		return m.err
	}

	word, err := m.segments.Read(0, m.pc)
	if err != nil {
		m.err = err
		return err
	}
	op, a, b, c := decode(word)

	switch op {
	case OpConditionalMove:
		if m.registers[c] != 0 {
			m.registers[a] = m.registers[b]
		}
		m.pc++

	case OpSegmentedLoad:
		v, err := m.segments.Read(m.registers[b], m.registers[c])
		if err != nil {
			m.err = err
			return err
		}
		m.registers[a] = v
		m.pc++

	case OpSegmentedStore:
		if err := m.segments.Write(m.registers[a], m.registers[b], m.registers[c]); err != nil {
			m.err = err
			return err
		}
		m.pc++

	case OpAdd:
		m.registers[a] = m.registers[b] + m.registers[c]
		m.pc++

	case OpMultiply:
		m.registers[a] = m.registers[b] * m.registers[c]
		m.pc++

	case OpDivide:
		if m.registers[c] == 0 {
			m.err = ErrDivisionByZero
			return m.err
		}
		m.registers[a] = m.registers[b] / m.registers[c]
		m.pc++

	case OpNand:
		m.registers[a] = ^(m.registers[b] & m.registers[c])
		m.pc++

	case OpHalt:
		m.err = ErrHalted
		m.stdout.Flush()
		return ErrHalted

	case OpMapSegment:
		id, err := m.segments.Allocate(m.registers[c])
		if err != nil {
			m.err = err
			return err
		}
		m.registers[b] = id
		m.pc++

	case OpUnmapSegment:
		if err := m.segments.Free(m.registers[c]); err != nil {
			m.err = err
			return err
		}
		m.pc++

	case OpOutput:
		v := m.registers[c]
		if v > 255 {
			m.err = ErrOutputByteRange
			return m.err
		}
		if err := m.stdout.WriteByte(byte(v)); err != nil {
			m.err = err
			return err
		}
		m.pc++

	case OpInput:
		b2, err := m.stdin.ReadByte()
		switch {
		case err == io.EOF:
			m.registers[c] = 0xFFFFFFFF
		case err != nil:
			m.err = err
			return err
		default:
			m.registers[c] = Word(b2)
		}
		m.pc++

	case OpLoadProgram:
		if m.registers[b] != 0 {
			if err := m.segments.ReplaceZero(m.registers[b]); err != nil {
				m.err = err
				return err
			}
		}
		m.pc = m.registers[c]

	case OpLoadValue:
		dst, imm := decodeLoadValue(word)
		m.registers[dst] = imm
		m.pc++

	default:
		m.err = ErrUnknownOpcode
		return m.err
	}

	return nil
}

// Run drives the fetch-decode-dispatch cycle until the machine halts or
// traps, flushing stdout on the way out either way. It returns nil on an
// ordinary halt and the triggering error on a trap, following the
// teacher's top-level recover pattern in vm/run.go: a runtime panic from
// deep inside a handler is treated identically to an explicit trap
// rather than crashing the process.
func (m *Machine) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if m.err == nil {
				m.err = ErrSegmentFault
			}
			err = m.Err()
		}
		m.stdout.Flush()
	}()

	for {
		if err := m.Step(); err != nil {
			return m.Err()
		}
	}
}
