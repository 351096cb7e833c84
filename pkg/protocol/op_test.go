package protocol

import (
	"errors"
	"io"
	"testing"
)

func TestEncodeDecodeOps(t *testing.T) {
	ops := []Op{
		{Code: OpCreateElement, Node: 1, Value: "div"},
		{Code: OpCreateText, Node: 2, Value: "hello"},
		{Code: OpSetAttr, Node: 1, Key: "class", Value: "card"},
		{Code: OpRemoveAttr, Node: 1, Key: "title"},
		{Code: OpListen, Node: 1, Key: "click"},
		{Code: OpUnlisten, Node: 1, Key: "click"},
		{Code: OpAppendChild, Node: 1, Child: 2},
		{Code: OpInsertChild, Node: 1, Index: 0, Child: 2},
		{Code: OpReplaceChild, Node: 1, Index: 3, Child: 2},
		{Code: OpRemoveChild, Node: 1, Index: 7},
		{Code: OpFreeNode, Node: 2},
	}

	data := EncodeOps(42, ops)
	seq, got, err := DecodeOps(data)
	if err != nil {
		t.Fatalf("DecodeOps: %v", err)
	}
	if seq != 42 {
		t.Errorf("seq = %d, want 42", seq)
	}
	if len(got) != len(ops) {
		t.Fatalf("decoded %d ops, want %d", len(got), len(ops))
	}
	for i := range ops {
		if got[i] != ops[i] {
			t.Errorf("op %d = %+v, want %+v", i, got[i], ops[i])
		}
	}
}

func TestDecodeOpsEmpty(t *testing.T) {
	seq, ops, err := DecodeOps(EncodeOps(0, nil))
	if err != nil {
		t.Fatalf("DecodeOps: %v", err)
	}
	if seq != 0 || len(ops) != 0 {
		t.Errorf("seq=%d len=%d, want 0, 0", seq, len(ops))
	}
}

func TestDecodeOpsUnknownCode(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(1)       // seq
	e.WriteUvarint(1)       // count
	e.WriteByte(0xFF)       // bogus op code
	e.WriteUvarint(1)       // node

	_, _, err := DecodeOps(e.Bytes())
	if !errors.Is(err, ErrUnknownOp) {
		t.Errorf("err = %v, want ErrUnknownOp", err)
	}
}

func TestDecodeOpsTruncated(t *testing.T) {
	data := EncodeOps(1, []Op{{Code: OpSetAttr, Node: 1, Key: "class", Value: "card"}})
	_, _, err := DecodeOps(data[:len(data)-3])
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecodeOpsTrailingBytes(t *testing.T) {
	data := EncodeOps(1, nil)
	data = append(data, 0x00)
	_, _, err := DecodeOps(data)
	if !errors.Is(err, ErrTrailingBytes) {
		t.Errorf("err = %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeOpsCountLimit(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(1)
	e.WriteUvarint(MaxOpsPerFrame + 1)
	_, _, err := DecodeOps(e.Bytes())
	if !errors.Is(err, ErrTooManyOps) {
		t.Errorf("err = %v, want ErrTooManyOps", err)
	}
}

func TestDecodeStringLimit(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(MaxStringLen + 1)
	d := NewDecoder(e.Bytes())
	_, err := d.ReadString()
	if !errors.Is(err, ErrStringTooLong) {
		t.Errorf("err = %v, want ErrStringTooLong", err)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1}
	for _, v := range values {
		e := NewEncoder()
		e.WriteUvarint(v)
		d := NewDecoder(e.Bytes())
		got, err := d.ReadUvarint()
		if err != nil {
			t.Fatalf("ReadUvarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}

func TestVarintOverflow(t *testing.T) {
	buf := make([]byte, MaxVarintLen+1)
	for i := range buf {
		buf[i] = 0x80
	}
	d := NewDecoder(buf)
	_, err := d.ReadUvarint()
	if !errors.Is(err, ErrVarintOverflow) {
		t.Errorf("err = %v, want ErrVarintOverflow", err)
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	ev := &Event{Node: 9, Type: "input", Value: "typed text"}
	got, err := DecodeEvent(EncodeEvent(ev))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if *got != *ev {
		t.Errorf("event = %+v, want %+v", got, ev)
	}
}

func TestDecodeEventTruncated(t *testing.T) {
	data := EncodeEvent(&Event{Node: 1, Type: "click"})
	_, err := DecodeEvent(data[:1])
	if err == nil {
		t.Error("expected error for truncated event")
	}
}
