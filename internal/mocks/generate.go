package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FeedProvider --dir ../domain/game --output domain/game --outpkg gamemock --filename feed_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SnapshotMirror --dir ../domain/game --output domain/game --outpkg gamemock --filename snapshot_mirror_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/rawdata --output domain/rawdata --outpkg rawdatamock --filename repository_mock.go
