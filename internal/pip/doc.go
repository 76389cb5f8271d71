// Package pip provides a wrapper around the pip CLI of a virtual
// environment. It handles install, upgrade, show and freeze invocations
// without depending on other internal packages.
package pip
