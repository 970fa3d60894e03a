package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_episode_repository.go -package=mocks github.com/bionicotaku/lingo-services-clips/internal/services EpisodeRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_movie_clip_repository.go -package=mocks github.com/bionicotaku/lingo-services-clips/internal/services MovieClipRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_repository.go -package=mocks github.com/bionicotaku/lingo-services-clips/internal/services VideoRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_episode_service.go -package=mocks github.com/bionicotaku/lingo-services-clips/internal/services EpisodeServiceInterface
//go:generate go run github.com/golang/mock/mockgen -destination=mock_movie_clip_service.go -package=mocks github.com/bionicotaku/lingo-services-clips/internal/services MovieClipServiceInterface
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_service.go -package=mocks github.com/bionicotaku/lingo-services-clips/internal/services VideoServiceInterface
