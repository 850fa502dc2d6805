package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robogen/internal/artifact"
	"robogen/internal/dialect"
	"robogen/internal/errors"
	"robogen/internal/sanitize"
)

func loginParams(t *testing.T, url, user, pass string) Params {
	t.Helper()

	u, err := sanitize.URL("url", url)
	require.NoError(t, err)
	username, err := sanitize.Credential("username", user)
	require.NoError(t, err)
	password, err := sanitize.Credential("password", pass)
	require.NoError(t, err)

	return Params{
		ParamURL:      u,
		ParamUsername: username,
		ParamPassword: password,
	}
}

func TestRenderLoginTest(t *testing.T) {
	d, _ := dialect.Resolve("appLocator")
	params := loginParams(t, "https://app.example.com", "standard_user", "secret_sauce")

	a, err := Render(artifact.KindLoginTest, params, d, false)
	require.NoError(t, err)

	assert.Equal(t, artifact.KindLoginTest, a.Kind)
	assert.Contains(t, a.Body, "${URL}           https://app.example.com")
	assert.Contains(t, a.Body, "${USERNAME}      standard_user")
	assert.Contains(t, a.Body, "${PASSWORD}      secret_sauce")
	assert.Contains(t, a.Body, "id=user-name")
	assert.Contains(t, a.Body, "*** Test Cases ***")
	assert.Contains(t, a.Body, "Login Test")
	assert.False(t, a.UsedDefaultDialect)
}

func TestRenderLoginTestDialectSelectors(t *testing.T) {
	params := loginParams(t, "https://app.example.com", "u", "p")

	d, _ := dialect.Resolve("bootstrap")
	a, err := Render(artifact.KindLoginTest, params, d, false)
	require.NoError(t, err)
	assert.Contains(t, a.Body, "css=input[name='username']")
	assert.Contains(t, a.Body, "css=.btn-primary")
	assert.NotContains(t, a.Body, "id=user-name")
}

func TestRenderDeterministic(t *testing.T) {
	d, _ := dialect.Resolve("generic")
	params := loginParams(t, "https://app.example.com", "user#1", "p@ss  word")

	first, err := Render(artifact.KindLoginTest, params, d, false)
	require.NoError(t, err)
	second, err := Render(artifact.KindLoginTest, params, d, false)
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body, "identical inputs must render byte-identical output")
}

func TestRenderCredentialRoundTrip(t *testing.T) {
	// Reading an escaped credential back out of the rendered text must
	// reproduce the original string exactly.
	original := `we!rd#pa$$\word  extra`
	d, _ := dialect.Resolve("appLocator")
	params := loginParams(t, "https://app.example.com", "user", original)

	a, err := Render(artifact.KindLoginTest, params, d, false)
	require.NoError(t, err)

	var embedded string
	for _, line := range strings.Split(a.Body, "\n") {
		if strings.HasPrefix(line, "${PASSWORD}") {
			embedded = strings.TrimSpace(strings.TrimPrefix(line, "${PASSWORD}"))

			break
		}
	}
	require.NotEmpty(t, embedded)
	assert.Equal(t, original, sanitize.Unescape(embedded))
}

func TestRenderMissingRequiredParameter(t *testing.T) {
	d, _ := dialect.Resolve("appLocator")
	params := loginParams(t, "https://app.example.com", "u", "p")
	delete(params, ParamPassword)

	_, err := Render(artifact.KindLoginTest, params, d, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMissingRequiredParameter))
}

func TestRenderZeroValueRejected(t *testing.T) {
	d, _ := dialect.Resolve("appLocator")
	params := loginParams(t, "https://app.example.com", "u", "p")
	params[ParamPassword] = sanitize.Value{}

	_, err := Render(artifact.KindLoginTest, params, d, false)
	assert.True(t, errors.IsCode(err, errors.CodeMissingRequiredParameter))
}

func TestRenderUnknownKind(t *testing.T) {
	d, _ := dialect.Resolve("appLocator")
	_, err := Render(artifact.Kind("responsive_test"), nil, d, false)
	assert.True(t, errors.IsCode(err, errors.CodeUnknownTemplateKind))
}

func TestRenderPageObject(t *testing.T) {
	d, _ := dialect.Resolve("generic")
	a, err := Render(artifact.KindPageObject, nil, d, false)
	require.NoError(t, err)
	assert.Contains(t, a.Body, "*** Keywords ***")
	assert.Contains(t, a.Body, "Login With Credentials")
	assert.Contains(t, a.Body, "# GENERIC Application Selectors")
	assert.Contains(t, a.Body, "css=.error")
}

func TestRenderDataDriven(t *testing.T) {
	file, err := sanitize.FileName("test_data_file", "logins.csv")
	require.NoError(t, err)

	d, _ := dialect.Resolve("appLocator")
	a, err := Render(artifact.KindDataDriven, Params{ParamDataFile: file}, d, false)
	require.NoError(t, err)
	assert.Contains(t, a.Body, "Library    DataDriver    logins.csv    encoding=utf-8")
	assert.Contains(t, a.Body, "Test Template    Login Test Template")
	assert.Contains(t, a.Body, "# Create logins.csv with columns: username,password,expected_result")
}

func TestRenderAPIIntegrationNormalizedMethod(t *testing.T) {
	baseURL, err := sanitize.URL("base_url", "https://api.example.com")
	require.NoError(t, err)
	endpoint, err := sanitize.Endpoint("endpoint", "/users")
	require.NoError(t, err)
	method, err := sanitize.Method("post")
	require.NoError(t, err)

	d, _ := dialect.Resolve("appLocator")
	a, err := Render(artifact.KindAPIIntegration, Params{
		ParamBaseURL:  baseURL,
		ParamEndpoint: endpoint,
		ParamMethod:   method,
	}, d, false)
	require.NoError(t, err)

	assert.Contains(t, a.Body, "POST On Session    api_session    ${API_ENDPOINT}")
	assert.Contains(t, a.Body, "${BASE_URL}         https://api.example.com")
	assert.Contains(t, a.Body, "${API_ENDPOINT}     /users")
}

func TestRenderStaticKinds(t *testing.T) {
	d, _ := dialect.Resolve("appLocator")

	for kind, marker := range map[artifact.Kind]string{
		artifact.KindAdvancedKeywords: "Select Dropdown Option By Label",
		artifact.KindExtendedKeywords: "Capture Screenshot With Timestamp",
		artifact.KindPerformanceTest:  "Validate Performance Thresholds",
	} {
		a, err := Render(kind, nil, d, false)
		require.NoError(t, err, kind)
		assert.Contains(t, a.Body, marker, kind)
		assert.Contains(t, a.Body, "*** Settings ***", kind)
	}
}

func TestRequiredParamsCoverAllKinds(t *testing.T) {
	for _, kind := range artifact.Kinds() {
		_, present := requiredParams[kind]
		assert.True(t, present, "kind %s has no required-parameter entry", kind)
		_, ok := skeletons[kind]
		assert.True(t, ok, "kind %s has no skeleton", kind)
	}
}
