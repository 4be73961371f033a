package ident

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"
)

func TestNewCPFChecksum(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5000; i++ {
		cpf := NewCPF(r)
		if len(cpf) != 11 {
			t.Fatalf("Expected 11 digits, got %q", cpf)
		}

		d := make([]int, 11)
		for j := range cpf {
			d[j] = int(cpf[j] - '0')
		}

		sum := 0
		for j := 0; j < 9; j++ {
			sum += d[j] * (10 - j)
		}
		if want := mod11(sum); d[9] != want {
			t.Fatalf("%s: first check digit = %d, want %d", cpf, d[9], want)
		}

		sum = 0
		for j := 0; j < 10; j++ {
			sum += d[j] * (11 - j)
		}
		if want := mod11(sum); d[10] != want {
			t.Fatalf("%s: second check digit = %d, want %d", cpf, d[10], want)
		}

		if !ValidCPF(cpf) {
			t.Fatalf("ValidCPF(%s) = false", cpf)
		}
	}
}

func mod11(sum int) int {
	if rem := sum % 11; rem >= 2 {
		return 11 - rem
	}
	return 0
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"52998224725", true},
		{"11144477735", true},
		{"52998224724", false},
		{"5299822472", false},
		{"529.982.247-25", false},
		{"5299822472a", false},
	}

	for _, tt := range tests {
		if got := ValidCPF(tt.cpf); got != tt.want {
			t.Errorf("ValidCPF(%q) = %v, want %v", tt.cpf, got, tt.want)
		}
	}
}

func TestNewCRMV(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	pattern := regexp.MustCompile(`^\d{4}-SP$`)

	for i := 0; i < 1000; i++ {
		crmv := NewCRMV(r, DefaultJurisdiction)
		if !pattern.MatchString(crmv) {
			t.Fatalf("Unexpected CRMV format: %q", crmv)
		}
		n, _ := strconv.Atoi(crmv[:4])
		if n < 1000 || n > 9999 {
			t.Fatalf("CRMV number out of range: %q", crmv)
		}
	}
}

func TestRegistryReserveRetries(t *testing.T) {
	reg := NewRegistry()
	values := []string{"a", "a", "a", "b"}
	i := 0
	gen := func() string {
		v := values[i]
		i++
		return v
	}

	first, err := reg.Reserve(NamespaceCampaign, gen)
	if err != nil || first != "a" {
		t.Fatalf("Reserve() = %q, %v", first, err)
	}

	second, err := reg.Reserve(NamespaceCampaign, gen)
	if err != nil {
		t.Fatalf("Reserve() error = %v", err)
	}
	if second != "b" {
		t.Errorf("Expected duplicates to be skipped, got %q", second)
	}
	if reg.Len(NamespaceCampaign) != 2 {
		t.Errorf("Expected 2 reserved values, got %d", reg.Len(NamespaceCampaign))
	}
}

func TestRegistryNamespacesAreIndependent(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Reserve(NamespaceEvent, func() string { return "x" }); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Reserve(NamespaceClinic, func() string { return "x" }); err != nil {
		t.Fatalf("Expected the same value to be free in another namespace: %v", err)
	}
	if !reg.Contains(NamespaceEvent, "x") || !reg.Contains(NamespaceClinic, "x") {
		t.Error("Expected both namespaces to contain the value")
	}
}

func TestRegistryExhausted(t *testing.T) {
	reg := NewRegistry()
	gen := func() string { return "only" }

	if _, err := reg.Reserve(NamespaceCRMV, gen); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Reserve(NamespaceCRMV, gen); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Expected ErrExhausted, got %v", err)
	}
}
