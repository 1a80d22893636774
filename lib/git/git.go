package git

import (
	"net/url"
	"os/exec"
	"regexp"
	"strings"
)

// scp-like remotes, e.g. git@bitbucket.org:workspace/repo.git
var scpRemoteRegex = regexp.MustCompile(`^(?:[^@/]+@)?(?P<Host>[^:/]+):(?P<Path>.+)$`)

/**
 * Parses text with the given regular expression and returns the
 * group values defined in the expression.
 */
func getParams(compRegEx *regexp.Regexp, text string) (paramsMap map[string]string) {
	match := compRegEx.FindStringSubmatch(text)

	paramsMap = make(map[string]string)
	for i, name := range compRegEx.SubexpNames() {
		if i > 0 && i < len(match) {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap
}

func execGit(path string, cmd ...string) ([]byte, error) {
	args := []string{}
	args = append(args, "-C", path)
	args = append(args, cmd...)
	gitCmd := exec.Command("git", args...)
	return gitCmd.Output()
}

// ParseRemote extracts "owner/repo" from an ssh or https remote URL.
// It returns an empty string when the URL is not recognised.
func ParseRemote(remoteURL string) string {
	remoteURL = strings.TrimSpace(remoteURL)

	var repoPath string
	if strings.Contains(remoteURL, "://") {
		u, err := url.Parse(remoteURL)
		if err != nil {
			return ""
		}
		repoPath = u.Path
	} else {
		repoPath = getParams(scpRemoteRegex, remoteURL)["Path"]
	}

	repoPath = strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	parts := strings.Split(repoPath, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

// RepoSlug returns the "workspace/repo" slug of the origin remote of the clone at path.
func RepoSlug(path string) (string, error) {
	remoteURL, err := execGit(path, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return ParseRemote(string(remoteURL)), nil
}
