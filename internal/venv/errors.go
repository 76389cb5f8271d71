package venv

import "fmt"

// ProvisionError reports a failed environment build. It is fatal: a
// corrupted environment is already handled by delete-and-rebuild, so there
// is nothing left to retry.
type ProvisionError struct {
	Root string
	Err  error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("provisioning environment %s: %v", e.Root, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// InstallError reports a failed package install. During InstallMissing it
// is logged and the package skipped; from InstallPackage it propagates.
type InstallError struct {
	Spec string
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %s: %v", e.Spec, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// ManifestError reports an unreadable or unwritable requirements file.
// Always fatal: no sync operation has a sensible partial behavior once the
// manifest itself is inaccessible.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("requirements file %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }
