// Package resolver picks the resources that best match a reference
// configuration, typically the configuration of a target device.
//
// The algorithm mirrors Android's runtime resource selection: first drop
// every candidate that contradicts the reference, then walk the axes in
// precedence order and keep only the most specific survivors.
//
//	ref := folderconfig.GetConfigForFolder("values-en-rUS")
//	folders, _ := resolver.NewFolders([]string{"values-en", "values-en-rUS", "values-fr"})
//	best := resolver.FindMatchingConfigurables(ref, folders) // [values-en-rUS]
package resolver
