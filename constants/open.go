package constants

var WebURLMap = map[string]string{
	"commits": "https://bitbucket.org/%s/commits/branch/%s",
	"commit":  "https://bitbucket.org/%s/commits/%s",
}
