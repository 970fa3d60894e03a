package controllers

import (
	"context"
	"net/http"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers/dto"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// Operation 名称，供中间件按操作匹配及日志记录。
const (
	OperationCreateEpisode      = "/clips.v1.EpisodeService/CreateEpisode"
	OperationGetEpisode         = "/clips.v1.EpisodeService/GetEpisode"
	OperationListEpisodes       = "/clips.v1.EpisodeService/ListEpisodes"
	OperationUpdateEpisode      = "/clips.v1.EpisodeService/UpdateEpisode"
	OperationDeleteEpisode      = "/clips.v1.EpisodeService/DeleteEpisode"
	OperationGetEpisodeDetail   = "/clips.v1.EpisodeService/GetEpisodeDetail"
	OperationCreateMovieClip    = "/clips.v1.MovieClipService/CreateMovieClip"
	OperationGetMovieClip       = "/clips.v1.MovieClipService/GetMovieClip"
	OperationListMovieClips     = "/clips.v1.MovieClipService/ListMovieClips"
	OperationUpdateMovieClip    = "/clips.v1.MovieClipService/UpdateMovieClip"
	OperationDeleteMovieClip    = "/clips.v1.MovieClipService/DeleteMovieClip"
	OperationLikeMovieClip      = "/clips.v1.MovieClipService/LikeMovieClip"
	OperationListClipsByEpisode = "/clips.v1.MovieClipService/ListClipsByEpisode"
	OperationCreateVideo        = "/clips.v1.VideoService/CreateVideo"
	OperationGetVideo           = "/clips.v1.VideoService/GetVideo"
	OperationListVideos         = "/clips.v1.VideoService/ListVideos"
	OperationUpdateVideo        = "/clips.v1.VideoService/UpdateVideo"
	OperationDeleteVideo        = "/clips.v1.VideoService/DeleteVideo"
	OperationLikeVideo          = "/clips.v1.VideoService/LikeVideo"
)

// RegisterEpisodeHTTPServer 注册节目路由。
func RegisterEpisodeHTTPServer(s *khttp.Server, h *EpisodeHandler) {
	r := s.Route("/")
	r.POST("/v1/episodes", route(OperationCreateEpisode, http.StatusCreated, bindBody[dto.CreateEpisodeRequest], h.CreateEpisode))
	r.GET("/v1/episodes", route(OperationListEpisodes, http.StatusOK, bindQuery[dto.ListEpisodesRequest], h.ListEpisodes))
	r.GET("/v1/episodes/{id}", route(OperationGetEpisode, http.StatusOK, bindVars[dto.IDRequest], h.GetEpisode))
	r.PATCH("/v1/episodes/{id}", route(OperationUpdateEpisode, http.StatusOK, bindBodyAndVars[dto.UpdateEpisodeRequest], h.UpdateEpisode))
	r.DELETE("/v1/episodes/{id}", route(OperationDeleteEpisode, http.StatusOK, bindVars[dto.IDRequest], h.DeleteEpisode))
	r.GET("/v1/episodes/{id}/detail", route(OperationGetEpisodeDetail, http.StatusOK, bindVars[dto.IDRequest], h.GetEpisodeDetail))
}

// RegisterMovieClipHTTPServer 注册片段路由。
func RegisterMovieClipHTTPServer(s *khttp.Server, h *MovieClipHandler) {
	r := s.Route("/")
	r.GET("/v1/episodes/{id}/clips", route(OperationListClipsByEpisode, http.StatusOK, bindVars[dto.IDRequest], h.ListClipsByEpisode))
	r.POST("/v1/clips", route(OperationCreateMovieClip, http.StatusCreated, bindBody[dto.CreateMovieClipRequest], h.CreateMovieClip))
	r.GET("/v1/clips", route(OperationListMovieClips, http.StatusOK, bindQuery[dto.ListMovieClipsRequest], h.ListMovieClips))
	r.GET("/v1/clips/{id}", route(OperationGetMovieClip, http.StatusOK, bindVars[dto.IDRequest], h.GetMovieClip))
	r.PATCH("/v1/clips/{id}", route(OperationUpdateMovieClip, http.StatusOK, bindBodyAndVars[dto.UpdateMovieClipRequest], h.UpdateMovieClip))
	r.DELETE("/v1/clips/{id}", route(OperationDeleteMovieClip, http.StatusOK, bindVars[dto.IDRequest], h.DeleteMovieClip))
	r.POST("/v1/clips/{id}/like", route(OperationLikeMovieClip, http.StatusOK, bindVars[dto.IDRequest], h.LikeMovieClip))
}

// RegisterVideoHTTPServer 注册视频路由。
func RegisterVideoHTTPServer(s *khttp.Server, h *VideoHandler) {
	r := s.Route("/")
	r.POST("/v1/videos", route(OperationCreateVideo, http.StatusCreated, bindBody[dto.CreateVideoRequest], h.CreateVideo))
	r.GET("/v1/videos", route(OperationListVideos, http.StatusOK, bindQuery[dto.ListVideosRequest], h.ListVideos))
	r.GET("/v1/videos/{id}", route(OperationGetVideo, http.StatusOK, bindVars[dto.IDRequest], h.GetVideo))
	r.PATCH("/v1/videos/{id}", route(OperationUpdateVideo, http.StatusOK, bindBodyAndVars[dto.UpdateVideoRequest], h.UpdateVideo))
	r.DELETE("/v1/videos/{id}", route(OperationDeleteVideo, http.StatusOK, bindVars[dto.IDRequest], h.DeleteVideo))
	r.POST("/v1/videos/{id}/like", route(OperationLikeVideo, http.StatusOK, bindVars[dto.IDRequest], h.LikeVideo))
}

// route 绑定请求、设置 Operation 并经过服务端中间件链调用 Handler 方法。
func route[Req any, Resp any](
	operation string,
	status int,
	bind func(khttp.Context, *Req) error,
	call func(context.Context, *Req) (Resp, error),
) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in Req
		if err := bind(ctx, &in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*Req))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(status, out)
	}
}

func bindBody[Req any](ctx khttp.Context, in *Req) error {
	return ctx.Bind(in)
}

func bindQuery[Req any](ctx khttp.Context, in *Req) error {
	return ctx.BindQuery(in)
}

func bindVars[Req any](ctx khttp.Context, in *Req) error {
	return ctx.BindVars(in)
}

func bindBodyAndVars[Req any](ctx khttp.Context, in *Req) error {
	if err := ctx.Bind(in); err != nil {
		return err
	}
	return ctx.BindVars(in)
}
