package customer

import "github.com/DioGolang/GoCheckout/internal/application/usecase"

type (
	CreateUseCase = usecase.UseCase[CreateInput, Output]
	FindUseCase   = usecase.UseCase[FindInput, Output]
	ListUseCase   = usecase.UseCase[ListInput, ListOutput]
	UpdateUseCase = usecase.UseCase[UpdateInput, Output]
)
