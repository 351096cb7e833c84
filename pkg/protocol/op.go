package protocol

// OpCode identifies a live-tree mutation in the wire stream. The op
// stream is the remote half of the dom capability: each op carries the
// IDs the client needs to replay the mutation against its own tree.
type OpCode uint8

const (
	OpCreateElement OpCode = 0x01 // Create a detached element node
	OpCreateText    OpCode = 0x02 // Create a detached text node
	OpSetAttr       OpCode = 0x03 // Set attribute
	OpRemoveAttr    OpCode = 0x04 // Remove attribute
	OpListen        OpCode = 0x05 // Subscribe to an event
	OpUnlisten      OpCode = 0x06 // Drop an event subscription
	OpAppendChild   OpCode = 0x07 // Append child
	OpInsertChild   OpCode = 0x08 // Insert child at index
	OpReplaceChild  OpCode = 0x09 // Replace child at index
	OpRemoveChild   OpCode = 0x0A // Remove child at index
	OpFreeNode      OpCode = 0x0B // Node will never be referenced again
)

// String returns the string representation of the OpCode.
func (op OpCode) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpListen:
		return "Listen"
	case OpUnlisten:
		return "Unlisten"
	case OpAppendChild:
		return "AppendChild"
	case OpInsertChild:
		return "InsertChild"
	case OpReplaceChild:
		return "ReplaceChild"
	case OpRemoveChild:
		return "RemoveChild"
	case OpFreeNode:
		return "FreeNode"
	default:
		return "Unknown"
	}
}

// Op is a single live-tree mutation.
type Op struct {
	Code  OpCode
	Node  uint64 // Target node ID
	Child uint64 // Child node ID, for Append/Insert/Replace
	Index uint64 // Child position, for Insert/Replace/Remove
	Key   string // Attribute key or event name
	Value string // Attribute value, text content, or element tag
}

// EncodeOps encodes a batch of ops with its sequence number.
func EncodeOps(seq uint64, ops []Op) []byte {
	e := NewEncoder()
	e.WriteUvarint(seq)
	e.WriteUvarint(uint64(len(ops)))
	for i := range ops {
		encodeOp(e, &ops[i])
	}
	return e.Bytes()
}

func encodeOp(e *Encoder, op *Op) {
	e.WriteByte(byte(op.Code))
	e.WriteUvarint(op.Node)

	switch op.Code {
	case OpCreateElement, OpCreateText:
		e.WriteString(op.Value)

	case OpSetAttr:
		e.WriteString(op.Key)
		e.WriteString(op.Value)

	case OpRemoveAttr, OpListen, OpUnlisten:
		e.WriteString(op.Key)

	case OpAppendChild:
		e.WriteUvarint(op.Child)

	case OpInsertChild, OpReplaceChild:
		e.WriteUvarint(op.Index)
		e.WriteUvarint(op.Child)

	case OpRemoveChild:
		e.WriteUvarint(op.Index)

	case OpFreeNode:
		// Node ID is sufficient
	}
}

// DecodeOps decodes a batch of ops, returning the sequence number and
// the ops.
func DecodeOps(data []byte) (uint64, []Op, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return 0, nil, err
	}
	count, err := d.ReadUvarint()
	if err != nil {
		return 0, nil, err
	}
	if count > MaxOpsPerFrame {
		return 0, nil, ErrTooManyOps
	}

	ops := make([]Op, count)
	for i := range ops {
		if err := decodeOp(d, &ops[i]); err != nil {
			return 0, nil, err
		}
	}
	if !d.EOF() {
		return 0, nil, ErrTrailingBytes
	}
	return seq, ops, nil
}

func decodeOp(d *Decoder, op *Op) error {
	code, err := d.ReadByte()
	if err != nil {
		return err
	}
	op.Code = OpCode(code)

	op.Node, err = d.ReadUvarint()
	if err != nil {
		return err
	}

	switch op.Code {
	case OpCreateElement, OpCreateText:
		op.Value, err = d.ReadString()

	case OpSetAttr:
		op.Key, err = d.ReadString()
		if err != nil {
			return err
		}
		op.Value, err = d.ReadString()

	case OpRemoveAttr, OpListen, OpUnlisten:
		op.Key, err = d.ReadString()

	case OpAppendChild:
		op.Child, err = d.ReadUvarint()

	case OpInsertChild, OpReplaceChild:
		op.Index, err = d.ReadUvarint()
		if err != nil {
			return err
		}
		op.Child, err = d.ReadUvarint()

	case OpRemoveChild:
		op.Index, err = d.ReadUvarint()

	case OpFreeNode:
		// Node ID is sufficient

	default:
		return ErrUnknownOp
	}

	return err
}
