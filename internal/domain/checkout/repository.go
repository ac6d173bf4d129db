package checkout

import "github.com/DioGolang/GoCheckout/internal/domain/shared"

type Repository interface {
	shared.Repository[*Order]
}
