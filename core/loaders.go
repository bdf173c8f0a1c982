package core

import "strings"

type ModLoaderComponent struct {
	Name         string
	FriendlyName string
}

// ModLoaders lists the loaders CurseForge knows, in the order a primary loader is picked from a version map
var ModLoaders = []ModLoaderComponent{
	{Name: "fabric", FriendlyName: "Fabric loader"},
	{Name: "forge", FriendlyName: "Forge"},
	{Name: "neoforge", FriendlyName: "NeoForge"},
	{Name: "quilt", FriendlyName: "Quilt loader"},
}

// ComponentToFriendlyName returns the display name of a version component, e.g. "forge" -> "Forge"
func ComponentToFriendlyName(component string) string {
	if component == "minecraft" {
		return "Minecraft"
	}
	for _, loader := range ModLoaders {
		if loader.Name == component {
			return loader.FriendlyName
		}
	}
	return component
}

// SplitLoaderID separates a dash-separated loader/version pair, e.g. "forge-47.1.0".
// Forge IDs sometimes carry the Minecraft version as well ("forge-1.20.1-47.1.0"), which is removed.
func SplitLoaderID(id string, mcVersion string) (component string, version string, ok bool) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", false
	}
	component, version = parts[0], parts[1]
	if component == "forge" && len(mcVersion) > 0 {
		version = strings.TrimPrefix(version, mcVersion+"-")
	}
	return component, version, true
}

// Versions returns the Minecraft version and the version of every recognisable mod loader.
// When a loader is declared more than once the first declaration wins.
func (m Manifest) Versions() map[string]string {
	vers := make(map[string]string)
	vers["minecraft"] = m.Minecraft.Version
	for _, v := range m.Minecraft.ModLoaders {
		component, version, ok := SplitLoaderID(v.ID, m.Minecraft.Version)
		if !ok {
			continue
		}
		if _, exists := vers[component]; !exists {
			vers[component] = version
		}
	}
	return vers
}

// PrimaryLoaderID builds the CurseForge loader ID for the first known loader present in versions
func PrimaryLoaderID(versions map[string]string) (string, bool) {
	for _, loader := range ModLoaders {
		if version, ok := versions[loader.Name]; ok && len(version) > 0 {
			return loader.Name + "-" + version, true
		}
	}
	return "", false
}
