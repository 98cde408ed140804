package secrets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls int
	creds Credentials
	err   error
}

func (p *countingProvider) Resolve(context.Context) (Credentials, error) {
	p.calls++
	if p.err != nil {
		return Credentials{}, p.err
	}
	return p.creds, nil
}

func TestStaticTrims(t *testing.T) {
	creds, err := Static{Password: " pw ", Secret: " sec\n"}.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pw", creds.AdminPassword)
	assert.Equal(t, "sec", creds.AdminSecret)
}

func TestCachedMemoizes(t *testing.T) {
	inner := &countingProvider{creds: Credentials{AdminPassword: "pw", AdminSecret: "s"}}
	cached := NewCached(inner, time.Minute)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		creds, err := cached.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "pw", creds.AdminPassword)
	}
	assert.Equal(t, 1, inner.calls)
}

func TestCachedServesStaleOnError(t *testing.T) {
	inner := &countingProvider{creds: Credentials{AdminPassword: "pw"}}
	cached := NewCached(inner, time.Nanosecond)

	ctx := context.Background()
	_, err := cached.Resolve(ctx)
	require.NoError(t, err)

	inner.err = errors.New("parameter store down")
	time.Sleep(time.Millisecond)
	creds, err := cached.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pw", creds.AdminPassword)
}

func TestCachedErrorWithoutPriorValue(t *testing.T) {
	inner := &countingProvider{err: errors.New("boom")}
	_, err := NewCached(inner, time.Minute).Resolve(context.Background())
	assert.Error(t, err)
}

type fakeSSM struct {
	params map[string]string
}

func (f *fakeSSM) GetParameters(_ context.Context, in *ssm.GetParametersInput, _ ...func(*ssm.Options)) (*ssm.GetParametersOutput, error) {
	out := &ssm.GetParametersOutput{}
	for _, name := range in.Names {
		if v, ok := f.params[name]; ok {
			out.Parameters = append(out.Parameters, types.Parameter{
				Name:  aws.String(name),
				Value: aws.String(v),
			})
		}
	}
	return out, nil
}

func TestSSMResolve(t *testing.T) {
	provider := newSSMWithClient(&fakeSSM{params: map[string]string{
		"/amplify/d3abc/main/ADMIN_PASSWORD": " topsecret ",
		"/amplify/d3abc/main/ADMIN_SECRET":   "signing",
	}}, "d3abc", "main")

	creds, err := provider.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "topsecret", creds.AdminPassword)
	assert.Equal(t, "signing", creds.AdminSecret)
}

func TestSSMResolveMissingParams(t *testing.T) {
	provider := newSSMWithClient(&fakeSSM{params: map[string]string{}}, "app", "main")
	creds, err := provider.Resolve(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds.AdminPassword)
	assert.Empty(t, creds.AdminSecret)
}
