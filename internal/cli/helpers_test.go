package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/cubos-banking-ledger/internal/domain/account"
)

func accountOwner(name string) account.Owner {
	slug := strings.ToLower(name)
	return account.Owner{
		Name:       name,
		NationalID: "id-" + slug,
		BirthDate:  "1985-03-02",
		Phone:      "11900000000",
		Email:      slug + "@example.com",
		Password:   "pw",
	}
}

func jsonEncode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
