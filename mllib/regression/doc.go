// Package regression contains the proxies of the regression algorithms run by the kernel.
//
// Every proxy only holds the session and the reference of the object in the kernel. The
// setters never change the receiver, they return a new proxy of the new object, as the
// kernel's builders do.
package regression
