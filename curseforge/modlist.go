package curseforge

import (
	"archive/zip"
	"bufio"
	"strconv"

	"github.com/packwiz/cursepack/core"
)

// ProjectURL returns the CurseForge page of a project
func ProjectURL(projectID uint64) string {
	return "https://www.curseforge.com/projects/" + strconv.FormatUint(projectID, 10)
}

func createModlist(zw *zip.Writer, files []core.FileRef) error {
	modlistFile, err := zw.Create("modlist.html")
	if err != nil {
		return err
	}

	w := bufio.NewWriter(modlistFile)

	_, err = w.WriteString("<ul>\r\n")
	if err != nil {
		return err
	}
	for _, file := range files {
		projectID := strconv.FormatUint(file.ProjectID, 10)
		_, err = w.WriteString("<li><a href=\"" + ProjectURL(file.ProjectID) + "\">Project " + projectID +
			" (file " + strconv.FormatUint(file.FileID, 10) + ")</a></li>\r\n")
		if err != nil {
			return err
		}
	}
	_, err = w.WriteString("</ul>\r\n")
	if err != nil {
		return err
	}
	return w.Flush()
}
