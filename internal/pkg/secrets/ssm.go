package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmAPI is the slice of the SSM client the provider needs; tests substitute
// a fake.
type ssmAPI interface {
	GetParameters(ctx context.Context, in *ssm.GetParametersInput, opts ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// SSM resolves credentials from Parameter Store under the Amplify-style
// prefix /amplify/<app>/<branch>/.
type SSM struct {
	client ssmAPI
	names  [2]string // password name, secret name
}

func NewSSM(ctx context.Context, region, appID, branch string) (*SSM, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("secrets: load aws config: %w", err)
	}
	return newSSMWithClient(ssm.NewFromConfig(awsCfg), appID, branch), nil
}

func newSSMWithClient(client ssmAPI, appID, branch string) *SSM {
	prefix := fmt.Sprintf("/amplify/%s/%s", appID, branch)
	return &SSM{
		client: client,
		names: [2]string{
			prefix + "/ADMIN_PASSWORD",
			prefix + "/ADMIN_SECRET",
		},
	}
}

func (s *SSM) Resolve(ctx context.Context) (Credentials, error) {
	out, err := s.client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          s.names[:],
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("secrets: ssm get parameters: %w", err)
	}
	byName := make(map[string]string, len(out.Parameters))
	for _, p := range out.Parameters {
		byName[aws.ToString(p.Name)] = aws.ToString(p.Value)
	}
	return Credentials{
		AdminPassword: strings.TrimSpace(byName[s.names[0]]),
		AdminSecret:   strings.TrimSpace(byName[s.names[1]]),
	}, nil
}
