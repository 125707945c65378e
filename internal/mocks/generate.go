package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name API --dir ../cli --output cli --outpkg climock --filename api_mock.go
