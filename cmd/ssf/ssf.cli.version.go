package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/itsatony/go-ssf"
	"gopkg.in/yaml.v3"
)

// versionInfo is the version report, in text or JSON
type versionInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Trigger   string `json:"default_trigger"`
}

// versionFile mirrors versions.yaml
type versionFile struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

// versionFileSearchPaths lists where versions.yaml is looked for
var versionFileSearchPaths = []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"}

func runVersion(args []string, stdout, stderr io.Writer) int {
	format, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := getVersionInfo(versionFileSearchPaths)
	if format == OutputFormatJSON {
		out, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(out))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Name, info.Version, info.Commit, info.Branch, info.BuildTime, info.GoVersion, info.Trigger)
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (string, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var format string
	fs.StringVar(&format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&format, FlagFormatShort, FlagDefaultFormat, "")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if format != OutputFormatText && format != OutputFormatJSON {
		return "", errors.New(ErrMsgInvalidFormat)
	}
	return format, nil
}

// getVersionInfo fills the report from the first parsable versions.yaml
// among paths. Fields the file leaves empty stay at their defaults.
func getVersionInfo(paths []string) *versionInfo {
	info := &versionInfo{
		Name:      VersionDefaultName,
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
		Trigger:   string(rune(ssf.DefaultTrigger)),
	}

	for _, path := range paths {
		vf, err := readVersionFile(path)
		if err != nil {
			continue
		}
		info.merge(vf)
		break
	}
	return info
}

func readVersionFile(path string) (*versionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vf versionFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, err
	}
	return &vf, nil
}

func (v *versionInfo) merge(vf *versionFile) {
	set := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	set(&v.Name, vf.Project.Name)
	set(&v.Version, vf.Project.Version)
	set(&v.Commit, vf.Git.Commit)
	set(&v.Branch, vf.Git.Branch)
	set(&v.BuildTime, vf.Build.Time)
	set(&v.GoVersion, vf.Build.GoVersion)
}
