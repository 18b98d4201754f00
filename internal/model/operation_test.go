package model

import "testing"

func TestViewOperation_IsZoom(t *testing.T) {
	tests := []struct {
		op       ViewOperation
		expected bool
	}{
		{OperationMagnify, true},
		{OperationShrink, true},
		{OperationOneToOne, true},
		{OperationZoom, true},
		{OperationFit, true},
		{OperationPan, false},
		{OperationReset, false},
		{OperationClose, false},
	}

	for _, test := range tests {
		result := test.op.IsZoom()
		if result != test.expected {
			t.Errorf("ViewOperation(%s).IsZoom() = %v, expected %v", test.op, result, test.expected)
		}
	}
}

func TestViewOperation_IsInteractive(t *testing.T) {
	tests := []struct {
		op       ViewOperation
		expected bool
	}{
		{OperationZoom, true},
		{OperationPan, true},
		{OperationMagnify, false},
		{OperationShrink, false},
		{OperationOneToOne, false},
		{OperationReset, false},
		{OperationFit, false},
		{OperationClose, false},
	}

	for _, test := range tests {
		result := test.op.IsInteractive()
		if result != test.expected {
			t.Errorf("ViewOperation(%s).IsInteractive() = %v, expected %v", test.op, result, test.expected)
		}
	}
}

func TestViewOperation_Glyph(t *testing.T) {
	for _, op := range DefaultOperations() {
		if op.Glyph() == "?" {
			t.Errorf("ViewOperation(%s).Glyph() has no symbol", op)
		}
		if op.Tip() == "" {
			t.Errorf("ViewOperation(%s).Tip() is empty", op)
		}
	}

	unknown := ViewOperation("Teleport")
	if unknown.Glyph() != "?" {
		t.Errorf("unknown operation glyph = %s, expected ?", unknown.Glyph())
	}
}

func TestViewOperation_String(t *testing.T) {
	op := OperationMagnify
	expected := "Magnify"
	result := op.String()

	if result != expected {
		t.Errorf("ViewOperation.String() = %s, expected %s", result, expected)
	}
}
