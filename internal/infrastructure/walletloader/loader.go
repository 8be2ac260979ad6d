package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"debank_client/internal/app/port"
	"debank_client/internal/domain/entity"
	"debank_client/internal/pkg/utils"
)

// WalletFileLoader implements port.WalletProvider by reading one address per
// line from a text file. Blank lines and lines starting with # are ignored.
type WalletFileLoader struct {
	filePath string
	logger   port.Logger
}

// NewWalletFileLoader creates a new WalletFileLoader.
func NewWalletFileLoader(filePath string, logger port.Logger) *WalletFileLoader {
	return &WalletFileLoader{
		filePath: filePath,
		logger:   logger,
	}
}

// GetWallets reads wallet addresses from the configured file path. Invalid
// addresses are skipped, duplicates are dropped and addresses are lowercased
// as DeBank expects.
func (l *WalletFileLoader) GetWallets() ([]entity.Wallet, error) {
	file, err := os.Open(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", l.filePath, err)
	}
	defer file.Close()

	var wallets []entity.Wallet
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		address, ok := utils.NormalizeAddress(line)
		if !ok {
			if l.logger != nil {
				l.logger.Warn("Skipping invalid wallet address", "file", l.filePath, "line_number", lineNum, "address", line)
			}
			continue
		}
		if _, dup := seen[address]; dup {
			continue
		}
		seen[address] = struct{}{}
		wallets = append(wallets, entity.Wallet{Address: address})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", l.filePath, err)
	}

	if l.logger != nil {
		l.logger.Info("Wallets loaded from file", "count", len(wallets), "path", l.filePath)
	}
	return wallets, nil
}
