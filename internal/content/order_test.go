package content

import (
	"testing"
)

func TestCompareOrderNumericSegments(t *testing.T) {
	// Numeric comparison: lexicographic ordering would put "10.0" first.
	if CompareOrder("2.0", "10.0") >= 0 {
		t.Error(`Expected "2.0" < "10.0"`)
	}
	if CompareOrder("10.0", "2.0") <= 0 {
		t.Error(`Expected "10.0" > "2.0"`)
	}
}

func TestCompareOrderChain(t *testing.T) {
	chain := []string{"1.0", "1.1", "1.2", "2.0"}
	for i := 0; i < len(chain)-1; i++ {
		if CompareOrder(chain[i], chain[i+1]) >= 0 {
			t.Errorf("Expected %q < %q", chain[i], chain[i+1])
		}
	}
}

func TestCompareOrderPadsMissingSegments(t *testing.T) {
	if CompareOrder("2", "2.0") != 0 {
		t.Error(`Expected "2" == "2.0"`)
	}
	if CompareOrder("2", "2.1") >= 0 {
		t.Error(`Expected "2" < "2.1"`)
	}
	if CompareOrder("2.1", "2") <= 0 {
		t.Error(`Expected "2.1" > "2"`)
	}
}

func TestCompareOrderEqual(t *testing.T) {
	if CompareOrder("3.5", "3.5") != 0 {
		t.Error(`Expected "3.5" == "3.5"`)
	}
}
