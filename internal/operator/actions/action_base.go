package actions

import (
	"context"

	"github.com/AjayPieris/wallet-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
