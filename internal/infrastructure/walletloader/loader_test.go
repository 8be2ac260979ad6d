package walletloader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetWallets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.txt")
	content := `# tracked wallets
0x5853eD4f26A3fceA565b3FBC698bb19cdF6DEB85

0x5853ed4f26a3fcea565b3fbc698bb19cdf6deb85
not-an-address
0x1234
  0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045  
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	wallets, err := NewWalletFileLoader(path, nil).GetWallets()
	if err != nil {
		t.Fatalf("GetWallets() error = %v", err)
	}
	want := []string{
		"0x5853ed4f26a3fcea565b3fbc698bb19cdf6deb85",
		"0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
	}
	if len(wallets) != len(want) {
		t.Fatalf("got %d wallets: %+v", len(wallets), wallets)
	}
	for i, w := range wallets {
		if w.Address != want[i] {
			t.Errorf("wallet %d = %q, want %q", i, w.Address, want[i])
		}
	}
}

func TestGetWalletsMissingFile(t *testing.T) {
	if _, err := NewWalletFileLoader(filepath.Join(t.TempDir(), "none.txt"), nil).GetWallets(); err == nil {
		t.Error("expected error for missing file")
	}
}
