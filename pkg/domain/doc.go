// Package domain contains the core entities of the site lifecycle: the domain
// record and the references to the certificate and distribution provisioned
// for it. The types are free of infrastructure concerns so they can be shared
// by the storage layer, the provider adapters and the lifecycle controller.
package domain
