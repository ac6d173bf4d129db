package order

import "github.com/DioGolang/GoCheckout/internal/application/usecase"

type (
	PlaceUseCase  = usecase.UseCase[PlaceInput, PlaceOutput]
	FindUseCase   = usecase.UseCase[FindInput, Output]
	ListUseCase   = usecase.UseCase[ListInput, ListOutput]
	UpdateUseCase = usecase.UseCase[UpdateInput, Output]
)
