package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/config"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/types"
)

// writeInputSet drops a complete set of entity CSVs into a temp dir and
// returns a run configuration pointing at them.
func writeInputSet(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"vrfs.csv": "name,schema,template\nprod-vrf,fabric,common\n",
		"bridge_domains.csv": "name,schema,template,vrf,layer2_stretch,unicast_routing\n" +
			"web-bd,fabric,common,prod-vrf,true,yes\n" +
			"app-bd,fabric,common,prod-vrf,false,no\n",
		"bd_subnets.csv": "bd_name,site_name,subnet_ip,scope\n" +
			"web-bd,site1,10.0.0.1/24,public\n" +
			"web-bd,site1,10.0.1.1/24,private\n" +
			"web-bd,site2,10.1.0.1/24,public\n",
		"anps.csv": "name,schema,template\nprod-anp,fabric,common\n",
		"epgs.csv": "name,schema,template,ap,bd,description,vrf\n" +
			"web-epg,fabric,common,prod-anp,web-bd,Web tier,prod-vrf\n",
		"epg_domains.csv": "epg_name,site_name,domain_type,domain_name\n" +
			"web-epg,site1,physical,phys-1\n" +
			"web-epg,site1,vmm,vmm-1\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}

	return &config.Config{
		VRFsFile:          filepath.Join(dir, "vrfs.csv"),
		BridgeDomainsFile: filepath.Join(dir, "bridge_domains.csv"),
		SubnetsFile:       filepath.Join(dir, "bd_subnets.csv"),
		ANPsFile:          filepath.Join(dir, "anps.csv"),
		EPGsFile:          filepath.Join(dir, "epgs.csv"),
		DomainsFile:       filepath.Join(dir, "epg_domains.csv"),
		OutputFile:        filepath.Join(dir, "ndo-schema-vars.yaml"),
	}
}

func TestRunBuild_EndToEnd(t *testing.T) {
	cfg := writeInputSet(t)

	if err := runBuild(cfg); err != nil {
		t.Fatalf("runBuild() failed: %v", err)
	}

	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Auto-generated from CSV files\n") {
		t.Errorf("output missing header comment:\n%s", data)
	}

	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	schema := doc.NDOSchemaData
	if len(schema.VRFs) != 1 || len(schema.BridgeDomains) != 2 || len(schema.ANPs) != 1 || len(schema.EPGs) != 1 {
		t.Fatalf("entity counts = %d/%d/%d/%d, want 1/2/1/1",
			len(schema.VRFs), len(schema.BridgeDomains), len(schema.ANPs), len(schema.EPGs))
	}

	web := schema.BridgeDomains[0]
	if web.Name != "web-bd" || len(web.Sites) != 2 {
		t.Fatalf("web-bd = %+v, want 2 sites", web)
	}
	if len(web.Sites[0].Subnets) != 2 || len(web.Sites[1].Subnets) != 1 {
		t.Errorf("web-bd subnet split = %d/%d, want 2/1",
			len(web.Sites[0].Subnets), len(web.Sites[1].Subnets))
	}
	if app := schema.BridgeDomains[1]; app.Name != "app-bd" || len(app.Sites) != 0 {
		t.Errorf("app-bd = %+v, want no sites", app)
	}

	epg := schema.EPGs[0]
	if len(epg.Sites) != 1 {
		t.Fatalf("web-epg sites = %+v, want 1", epg.Sites)
	}
	if len(epg.Sites[0].PhysDomainAssociation) != 1 || len(epg.Sites[0].VMMDomainAssociation) != 1 {
		t.Errorf("web-epg site1 = %+v, want one phys and one vmm domain", epg.Sites[0])
	}
}

func TestRunBuild_MissingOptionalDetailFiles(t *testing.T) {
	cfg := writeInputSet(t)
	cfg.SubnetsFile = filepath.Join(t.TempDir(), "absent.csv")
	cfg.DomainsFile = ""

	if err := runBuild(cfg); err != nil {
		t.Fatalf("runBuild() with absent detail files failed: %v", err)
	}

	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	for _, bd := range doc.NDOSchemaData.BridgeDomains {
		if len(bd.Sites) != 0 {
			t.Errorf("%s sites = %+v, want empty without a subnet table", bd.Name, bd.Sites)
		}
	}
	for _, epg := range doc.NDOSchemaData.EPGs {
		if len(epg.Sites) != 0 {
			t.Errorf("%s sites = %+v, want empty without a domain table", epg.Name, epg.Sites)
		}
	}
}

func TestRunBuild_MissingMandatoryFile(t *testing.T) {
	cfg := writeInputSet(t)
	cfg.EPGsFile = filepath.Join(t.TempDir(), "absent.csv")

	if err := runBuild(cfg); err == nil {
		t.Fatal("runBuild() with missing EPGs file: want error, got nil")
	}
}
