package protocol

// Event is an inbound client event: something fired on a node the
// server subscribed to via OpListen.
type Event struct {
	Node  uint64 // ID of the node the event fired on
	Type  string // Live event name ("click", "input", ...)
	Value string // Event payload, e.g. an input's current value
}

// EncodeEvent encodes an event frame.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	e.WriteUvarint(ev.Node)
	e.WriteString(ev.Type)
	e.WriteString(ev.Value)
	return e.Bytes()
}

// DecodeEvent decodes an event frame.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)

	node, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	typ, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	value, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	if !d.EOF() {
		return nil, ErrTrailingBytes
	}
	return &Event{Node: node, Type: typ, Value: value}, nil
}
