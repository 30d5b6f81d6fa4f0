//go:generate mockgen -package mock -destination ./artifact.go github.com/serverless/stream-functions/artifact Loader,Handle
//go:generate mockgen -package mock -destination ./typevalidator.go github.com/serverless/stream-functions/validate TypeValidator

package mock
