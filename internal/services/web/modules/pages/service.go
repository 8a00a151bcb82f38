package pages

import (
	"github.com/manishyadav/portfolio/internal/platform/branding"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

// service assembles page view state from the owner profile and the fixed
// portfolio content.
type service struct {
	owner branding.Profile
}

func newService(owner branding.Profile) service {
	return service{owner: owner}
}

func (s service) about() webtemplates.AboutView {
	return webtemplates.AboutView{
		Owner: s.owner,
		Paragraphs: []string{
			"I build and run cloud infrastructure that product teams can ship on without thinking about it: repeatable environments, fast pipelines and clusters that scale with the traffic.",
			"Most of my recent work has been on AWS, moving workloads from hand-managed platforms onto Kubernetes, codifying everything in Terraform and Terragrunt, and trimming the bill with automation.",
		},
		Skills: []webtemplates.SkillGroup{
			{Name: "Cloud", Skills: []string{"AWS EKS", "EC2", "Lambda", "S3", "RDS", "IAM", "CloudWatch"}},
			{Name: "Containers", Skills: []string{"Kubernetes", "Helm", "Docker", "Blue-green deployments"}},
			{Name: "Infrastructure as Code", Skills: []string{"Terraform", "Terragrunt", "CloudFormation"}},
			{Name: "Automation", Skills: []string{"Python", "Bash", "Jenkins", "GitHub Actions"}},
			{Name: "Observability", Skills: []string{"Prometheus", "Grafana", "CloudWatch alarms"}},
		},
	}
}

func (s service) experience() webtemplates.ExperienceView {
	return webtemplates.ExperienceView{
		Roles: []webtemplates.Role{
			{
				Title:   "DevOps Engineer",
				Company: "CSG International",
				Period:  "2022 - Present",
				Highlights: []string{
					"Led the migration of production workloads from AWS Elastic Beanstalk to Amazon EKS with zero downtime and 75% faster deployments.",
					"Refactored Terraform workspaces into Terragrunt modules, improving code reuse by 85% and cutting deployment time by 60%.",
					"Built Lambda automation for EC2 lifecycle management in non-production accounts, reducing AWS spend by 30%.",
				},
			},
			{
				Title:   "Associate DevOps Engineer",
				Company: "CSG International",
				Period:  "2021 - 2022",
				Highlights: []string{
					"Maintained Jenkins pipelines and container images for internal services.",
					"Introduced CloudWatch dashboards and alarms for the core billing platform.",
				},
			},
		},
	}
}

func (s service) projects() webtemplates.ProjectsView {
	return webtemplates.ProjectsView{
		Projects: []webtemplates.Project{
			{
				Name:        "Elastic Beanstalk to EKS migration",
				Summary:     "Moved production services onto Amazon EKS with Helm charts, blue-green rollouts and cluster autoscaling.",
				Stack:       []string{"AWS EKS", "Helm", "Terraform", "Jenkins"},
				Outcome:     "75% faster deployments, zero downtime during cutover.",
				RelatedPost: routepath.Blog,
			},
			{
				Name:        "EC2 lifecycle automation",
				Summary:     "Scheduled Lambda functions stop and start tagged non-production instances outside working hours.",
				Stack:       []string{"Python", "AWS Lambda", "EventBridge", "EC2"},
				Outcome:     "30% reduction in the monthly AWS bill.",
				RelatedPost: routepath.Blog,
			},
			{
				Name:        "Terragrunt infrastructure refactor",
				Summary:     "Replaced per-environment Terraform workspaces with DRY Terragrunt modules and remote state per account.",
				Stack:       []string{"Terraform", "Terragrunt", "S3", "DynamoDB"},
				Outcome:     "85% more code reuse and 60% shorter deployments.",
				RelatedPost: routepath.Blog,
			},
			{
				Name:    "Portfolio site",
				Summary: "This site: a Go web server with a SQLite or Postgres backed blog.",
				Stack:   []string{"Go", "SQLite", "PostgreSQL", "OpenTelemetry"},
			},
		},
	}
}

func (s service) contact() webtemplates.ContactView {
	return webtemplates.ContactView{Owner: s.owner}
}
