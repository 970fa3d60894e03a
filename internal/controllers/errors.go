package controllers

import (
	"context"

	"github.com/bionicotaku/lingo-services-clips/internal/metadata"
	"github.com/bionicotaku/lingo-services-clips/internal/services"

	kerrors "github.com/go-kratos/kratos/v2/errors"
)

// 错误原因码，出现在 kratos 错误响应体的 reason 字段。
const (
	ReasonValidation     = "VALIDATION_FAILED"
	ReasonInvalidID      = "INVALID_ID"
	ReasonNotFound       = "NOT_FOUND"
	ReasonInfrastructure = "INFRASTRUCTURE_FAILURE"
)

// toHTTPError 将用例错误映射为 kratos 错误：Validation → 400，NotFound → 404，其余 → 500。
func toHTTPError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var out *kerrors.Error
	switch services.KindOf(err) {
	case services.KindValidation:
		out = kerrors.BadRequest(ReasonValidation, err.Error())
		if detail := services.ValidationDetail(err); detail != nil {
			out = out.WithMetadata(map[string]string{
				"field": detail.Field,
				"kind":  detail.Kind.String(),
			})
		}
	case services.KindNotFound:
		out = kerrors.NotFound(ReasonNotFound, err.Error())
	default:
		out = kerrors.InternalServer(ReasonInfrastructure, "storage unavailable").WithCause(err)
	}
	if meta, ok := metadata.FromContext(ctx); ok && meta.RequestID != "" {
		md := map[string]string{"request_id": meta.RequestID}
		for k, v := range out.Metadata {
			md[k] = v
		}
		out = out.WithMetadata(md)
	}
	return out
}

func invalidID(err error) error {
	return kerrors.BadRequest(ReasonInvalidID, err.Error())
}
