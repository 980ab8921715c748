package folderconfig

import "github.com/arthur-debert/resconf/pkg/qualifiers"

// Set copies every slot of other into c. With nonFakeValuesOnly, slots whose
// source qualifier holds a fake value keep the receiver's qualifier. A nil
// other leaves c unchanged.
func (c *FolderConfiguration) Set(other *FolderConfiguration, nonFakeValuesOnly bool) {
	if other == nil {
		return
	}
	for i, q := range other.qualifiers {
		if nonFakeValuesOnly && q != nil && q.HasFakeValue() {
			continue
		}
		c.qualifiers[i] = q
	}
}

// Subtract clears every slot for which other holds a valid qualifier.
func (c *FolderConfiguration) Subtract(other *FolderConfiguration) {
	if other == nil {
		return
	}
	for i, q := range other.qualifiers {
		if q != nil && q.IsValid() {
			c.qualifiers[i] = nil
		}
	}
}

// Add overwrites every slot for which other holds a qualifier, valid or not.
func (c *FolderConfiguration) Add(other *FolderConfiguration) {
	if other == nil {
		return
	}
	for i, q := range other.qualifiers {
		if q != nil {
			c.qualifiers[i] = q
		}
	}
}

// MinSdk returns the highest API level required by the qualifiers of c, at
// least 1.
func (c *FolderConfiguration) MinSdk() int {
	minSdk := 1
	for _, q := range c.qualifiers {
		if q != nil && q.Since() > minSdk {
			minSdk = q.Since()
		}
	}
	return minSdk
}

// Normalize makes the version slot state the minimum platform the other
// qualifiers need: when that minimum is above 1 and the version is missing
// or lower, the version is raised to it.
func (c *FolderConfiguration) Normalize() {
	minSdk := c.MinSdk()
	if minSdk == 1 {
		return
	}
	if v, ok := c.Version(); !ok || !v.IsValid() || v.Version() < minSdk {
		c.qualifiers[qualifiers.AxisVersion] = qualifiers.NewVersionQualifier(minSdk)
	}
}
