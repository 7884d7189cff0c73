package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const ssmPrefix = "ssm:"

// ParameterGetter is the subset of *ssm.Client used to resolve secrets.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NeedsSSM reports whether any value references Parameter Store.
func NeedsSSM(env map[string]string) bool {
	for _, v := range env {
		if strings.HasPrefix(v, ssmPrefix) {
			return true
		}
	}
	return false
}

// NewSSMClient builds a Parameter Store client from the default AWS credential chain.
func NewSSMClient(ctx context.Context, region string) (*ssm.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ResolveSecrets returns a copy of env where every "ssm:/name" value is replaced by the
// decrypted parameter. A nil params is only allowed when no value needs resolving.
func ResolveSecrets(ctx context.Context, env map[string]string, params ParameterGetter) (map[string]string, error) {
	resolved := make(map[string]string, len(env))
	for key, value := range env {
		resolved[key] = value
		if !strings.HasPrefix(value, ssmPrefix) {
			continue
		}
		if params == nil {
			return nil, fmt.Errorf("%s references Parameter Store but no SSM client is configured", key)
		}

		name := strings.TrimPrefix(value, ssmPrefix)
		out, err := params.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return nil, fmt.Errorf("resolving %s from parameter %s: %w", key, name, err)
		}
		if out.Parameter == nil {
			return nil, fmt.Errorf("parameter %s for %s has no value", name, key)
		}
		resolved[key] = aws.ToString(out.Parameter.Value)
	}
	return resolved, nil
}
