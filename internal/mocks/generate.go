package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Rotation --dir ../domain/player --output domain/player --outpkg playermock --filename rotation_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/team --output domain/team --outpkg teammock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Ledger --dir ../domain/team --output domain/team --outpkg teammock --filename ledger_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Purchaser --dir ../domain/auction --output domain/auction --outpkg auctionmock --filename purchaser_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/catalog --output domain/catalog --outpkg catalogmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Authenticator --dir ../domain/account --output domain/account --outpkg accountmock --filename authenticator_mock.go
